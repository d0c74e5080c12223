package hypergraph

import (
	"strconv"

	"github.com/jaewan01/hypersweep/lib/errors"
)

// Hypergraph is a bipartite incidence structure between node IDs and edge
// IDs.  Node and edge order is insertion order, which the loader makes
// deterministic, so downstream index-based code (expansions, power
// iteration) is reproducible across runs.
type Hypergraph struct {
	nodes     []string
	edges     []string
	nodeIndex map[string]int
	edgeIndex map[string]int
	nodeEdges map[string][]string
	edgeNodes map[string][]string
}

func New() *Hypergraph {
	return &Hypergraph{
		nodeIndex: make(map[string]int),
		edgeIndex: make(map[string]int),
		nodeEdges: make(map[string][]string),
		edgeNodes: make(map[string][]string),
	}
}

// FromEdges builds a hypergraph from member lists, numbering the edges in
// order.  Intended for tests and example construction.
func FromEdges(edges [][]string) (*Hypergraph, error) {
	h := New()
	for i, members := range edges {
		if err := h.AddEdge(strconv.Itoa(i), members); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (h *Hypergraph) AddNode(node string) {
	if _, ok := h.nodeIndex[node]; ok {
		return
	}
	h.nodeIndex[node] = len(h.nodes)
	h.nodes = append(h.nodes, node)
}

func (h *Hypergraph) AddEdge(edge string, members []string) error {
	if _, ok := h.edgeIndex[edge]; ok {
		return errors.New("duplicate edge id %q", edge)
	}
	if len(members) == 0 {
		return errors.New("edge %q has no members", edge)
	}
	h.edgeIndex[edge] = len(h.edges)
	h.edges = append(h.edges, edge)
	seen := make(map[string]bool, len(members))
	for _, node := range members {
		if seen[node] {
			continue
		}
		seen[node] = true
		h.AddNode(node)
		h.edgeNodes[edge] = append(h.edgeNodes[edge], node)
		h.nodeEdges[node] = append(h.nodeEdges[node], edge)
	}
	return nil
}

func (h *Hypergraph) NumNodes() int {
	return len(h.nodes)
}

func (h *Hypergraph) NumEdges() int {
	return len(h.edges)
}

// Nodes returns the node IDs in insertion order.  The slice is shared; do
// not mutate.
func (h *Hypergraph) Nodes() []string {
	return h.nodes
}

func (h *Hypergraph) Edges() []string {
	return h.edges
}

// Members returns the node IDs contained in an edge.
func (h *Hypergraph) Members(edge string) []string {
	return h.edgeNodes[edge]
}

// EdgesOf returns the edge IDs containing a node.
func (h *Hypergraph) EdgesOf(node string) []string {
	return h.nodeEdges[node]
}

// Degree is the number of edges containing the node.
func (h *Hypergraph) Degree(node string) int {
	return len(h.nodeEdges[node])
}

// Size is the number of nodes an edge contains.
func (h *Hypergraph) Size(edge string) int {
	return len(h.edgeNodes[edge])
}

func (h *Hypergraph) MaxEdgeSize() int {
	maxSize := 0
	for _, edge := range h.edges {
		if size := len(h.edgeNodes[edge]); size > maxSize {
			maxSize = size
		}
	}
	return maxSize
}

// NodeNeighbors returns the distinct nodes sharing at least one edge with
// the given node, excluding the node itself, in node order.
func (h *Hypergraph) NodeNeighbors(node string) []string {
	seen := make(map[string]bool)
	for _, edge := range h.nodeEdges[node] {
		for _, other := range h.edgeNodes[edge] {
			if other != node {
				seen[other] = true
			}
		}
	}
	return h.orderedNodes(seen)
}

// EdgeNeighbors returns the distinct edges sharing at least one node with
// the given edge, excluding the edge itself, in edge order.
func (h *Hypergraph) EdgeNeighbors(edge string) []string {
	seen := make(map[string]bool)
	for _, node := range h.edgeNodes[edge] {
		for _, other := range h.nodeEdges[node] {
			if other != edge {
				seen[other] = true
			}
		}
	}
	ordered := make([]string, 0, len(seen))
	for _, e := range h.edges {
		if seen[e] {
			ordered = append(ordered, e)
		}
	}
	return ordered
}

func (h *Hypergraph) orderedNodes(set map[string]bool) []string {
	ordered := make([]string, 0, len(set))
	for _, n := range h.nodes {
		if set[n] {
			ordered = append(ordered, n)
		}
	}
	return ordered
}
