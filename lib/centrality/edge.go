package centrality

import (
	"github.com/jaewan01/hypersweep/lib/hypergraph"
)

// edgeDegree scores an edge by the number of nodes it contains, its degree
// in the bipartite incidence structure.
func edgeDegree(h *hypergraph.Hypergraph) (map[string]float64, error) {
	scores := make(map[string]float64, h.NumEdges())
	for _, edge := range h.Edges() {
		scores[edge] = float64(h.Size(edge))
	}
	return Normalize(scores), nil
}

// edgeLineExpansionDegree scores an edge by the number of other edges it
// shares a node with.
func edgeLineExpansionDegree(h *hypergraph.Hypergraph) (map[string]float64, error) {
	scores := make(map[string]float64, h.NumEdges())
	for _, edge := range h.Edges() {
		scores[edge] = float64(len(h.EdgeNeighbors(edge)))
	}
	return Normalize(scores), nil
}

func edgeCloseness(h *hypergraph.Hypergraph) (map[string]float64, error) {
	return closenessOf(h.LineExpansion()), nil
}

func edgeBetweenness(h *hypergraph.Hypergraph) (map[string]float64, error) {
	return betweennessOf(h.LineExpansion()), nil
}

func edgeHarmonic(h *hypergraph.Hypergraph) (map[string]float64, error) {
	return harmonicOf(h.LineExpansion()), nil
}

func edgeEigenvector(h *hypergraph.Hypergraph) (map[string]float64, error) {
	return eigenvectorOf(h.LineExpansion())
}

func edgePagerank(h *hypergraph.Hypergraph) (map[string]float64, error) {
	return pagerankOf(h.LineExpansion()), nil
}

// edgeHypercoreness lifts node hypercoreness to edges as the mean over the
// edge's members.
func edgeHypercoreness(h *hypergraph.Hypergraph) (map[string]float64, error) {
	nodeScores := hypercoreness(h)
	scores := make(map[string]float64, h.NumEdges())
	for _, edge := range h.Edges() {
		members := h.Members(edge)
		total := 0.0
		for _, node := range members {
			total += nodeScores[node]
		}
		scores[edge] = total / float64(len(members))
	}
	return Normalize(scores), nil
}
