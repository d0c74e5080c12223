package hypergraph

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Expansion pairs a gonum graph with the mapping between graph node IDs and
// the original hypergraph IDs (node IDs for the clique expansion, edge IDs
// for the line expansion).
type Expansion struct {
	Graph *simple.UndirectedGraph
	IDs   []string
}

func (e *Expansion) ID(i int64) string {
	return e.IDs[int(i)]
}

// CliqueExpansion projects the hypergraph onto its nodes: two nodes are
// adjacent when they share at least one edge.
func (h *Hypergraph) CliqueExpansion() *Expansion {
	g := simple.NewUndirectedGraph()
	for i := range h.nodes {
		g.AddNode(simple.Node(i))
	}
	for _, edge := range h.edges {
		members := h.edgeNodes[edge]
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				a := simple.Node(h.nodeIndex[members[i]])
				b := simple.Node(h.nodeIndex[members[j]])
				if !g.HasEdgeBetween(a.ID(), b.ID()) {
					g.SetEdge(simple.Edge{F: a, T: b})
				}
			}
		}
	}
	return &Expansion{Graph: g, IDs: h.nodes}
}

// LineExpansion projects the hypergraph onto its edges: two edges are
// adjacent when they share at least one node.
func (h *Hypergraph) LineExpansion() *Expansion {
	g := simple.NewUndirectedGraph()
	for i := range h.edges {
		g.AddNode(simple.Node(i))
	}
	for _, node := range h.nodes {
		incident := h.nodeEdges[node]
		for i := 0; i < len(incident); i++ {
			for j := i + 1; j < len(incident); j++ {
				a := simple.Node(h.edgeIndex[incident[i]])
				b := simple.Node(h.edgeIndex[incident[j]])
				if !g.HasEdgeBetween(a.ID(), b.ID()) {
					g.SetEdge(simple.Edge{F: a, T: b})
				}
			}
		}
	}
	return &Expansion{Graph: g, IDs: h.edges}
}

// Directed mirrors every undirected edge in both directions, which is what
// gonum's PageRank expects.
func (e *Expansion) Directed() graph.Directed {
	d := simple.NewDirectedGraph()
	nodes := e.Graph.Nodes()
	for nodes.Next() {
		d.AddNode(nodes.Node())
	}
	edges := e.Graph.Edges()
	for edges.Next() {
		edge := edges.Edge()
		d.SetEdge(simple.Edge{F: edge.From(), T: edge.To()})
		d.SetEdge(simple.Edge{F: edge.To(), T: edge.From()})
	}
	return d
}
