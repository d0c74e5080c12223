package centrality

import (
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/path"

	"github.com/jaewan01/hypersweep/lib/hypergraph"
)

const pagerankDamping = 0.85

func nodeDegree(h *hypergraph.Hypergraph) (map[string]float64, error) {
	scores := make(map[string]float64, h.NumNodes())
	for _, node := range h.Nodes() {
		scores[node] = float64(h.Degree(node))
	}
	return Normalize(scores), nil
}

// nodeNeighborDegree scores a node by the mean degree of the nodes it
// shares an edge with.
func nodeNeighborDegree(h *hypergraph.Hypergraph) (map[string]float64, error) {
	scores := make(map[string]float64, h.NumNodes())
	for _, node := range h.Nodes() {
		neighbors := h.NodeNeighbors(node)
		if len(neighbors) == 0 {
			scores[node] = 0
			continue
		}
		total := 0.0
		for _, neighbor := range neighbors {
			total += float64(h.Degree(neighbor))
		}
		scores[node] = total / float64(len(neighbors))
	}
	return Normalize(scores), nil
}

func nodeCloseness(h *hypergraph.Hypergraph) (map[string]float64, error) {
	return closenessOf(h.CliqueExpansion()), nil
}

func nodeBetweenness(h *hypergraph.Hypergraph) (map[string]float64, error) {
	return betweennessOf(h.CliqueExpansion()), nil
}

func nodeHarmonic(h *hypergraph.Hypergraph) (map[string]float64, error) {
	return harmonicOf(h.CliqueExpansion()), nil
}

func nodeEigenvector(h *hypergraph.Hypergraph) (map[string]float64, error) {
	return eigenvectorOf(h.CliqueExpansion())
}

func nodePagerank(h *hypergraph.Hypergraph) (map[string]float64, error) {
	return pagerankOf(h.CliqueExpansion()), nil
}

// nodeUpliftEigenvector is eigenvector centrality on the size-discounted
// clique expansion: each shared edge contributes 1/(|e|-1) so that large
// edges do not dominate the spectrum.
func nodeUpliftEigenvector(h *hypergraph.Hypergraph) (map[string]float64, error) {
	nodes := h.Nodes()
	index := make(map[string]int, len(nodes))
	for i, node := range nodes {
		index[node] = i
	}
	weights := make([]map[int]float64, len(nodes))
	for i := range weights {
		weights[i] = make(map[int]float64)
	}
	for _, edge := range h.Edges() {
		members := h.Members(edge)
		if len(members) < 2 {
			continue
		}
		w := 1.0 / float64(len(members)-1)
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				a, b := index[members[i]], index[members[j]]
				weights[a][b] += w
				weights[b][a] += w
			}
		}
	}
	adjacency := make([][]weightedNeighbor, len(nodes))
	for i, row := range weights {
		for j, w := range row {
			adjacency[i] = append(adjacency[i], weightedNeighbor{index: j, weight: w})
		}
	}
	vector, err := powerIterate(adjacency)
	if err != nil {
		return nil, err
	}
	scores := make(map[string]float64, len(nodes))
	for i, node := range nodes {
		scores[node] = vector[i]
	}
	return Normalize(scores), nil
}

func nodeHypercoreness(h *hypergraph.Hypergraph) (map[string]float64, error) {
	return Normalize(hypercoreness(h)), nil
}

func closenessOf(e *hypergraph.Expansion) map[string]float64 {
	shortest := path.DijkstraAllPaths(e.Graph)
	return fromIndexScores(e, network.Closeness(e.Graph, shortest))
}

func harmonicOf(e *hypergraph.Expansion) map[string]float64 {
	shortest := path.DijkstraAllPaths(e.Graph)
	return fromIndexScores(e, network.Harmonic(e.Graph, shortest))
}

func betweennessOf(e *hypergraph.Expansion) map[string]float64 {
	// Betweenness omits zero-score nodes; fromIndexScores fills them in.
	return fromIndexScores(e, network.Betweenness(e.Graph))
}

func pagerankOf(e *hypergraph.Expansion) map[string]float64 {
	return fromIndexScores(e, network.PageRank(e.Directed(), pagerankDamping, tolerance))
}

func eigenvectorOf(e *hypergraph.Expansion) (map[string]float64, error) {
	n := len(e.IDs)
	adjacency := graphAdjacency(n, func(i, j int) bool {
		return e.Graph.HasEdgeBetween(int64(i), int64(j))
	})
	vector, err := powerIterate(adjacency)
	if err != nil {
		return nil, err
	}
	scores := make(map[string]float64, n)
	for i, id := range e.IDs {
		scores[id] = vector[i]
	}
	return Normalize(scores), nil
}

func fromIndexScores(e *hypergraph.Expansion, indexed map[int64]float64) map[string]float64 {
	scores := make(map[string]float64, len(e.IDs))
	for i, id := range e.IDs {
		scores[id] = indexed[int64(i)]
	}
	return Normalize(scores)
}
