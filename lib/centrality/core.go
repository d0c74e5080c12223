package centrality

import (
	"github.com/jaewan01/hypersweep/lib/hypergraph"
)

// hypercoreness aggregates (k, m)-core membership over every edge-size
// threshold m: for each m, nodes get their core number relative to the
// deepest core at that threshold, and the per-threshold contributions are
// summed.  See St-Onge et al., "Hyper-cores promote localization and
// efficient seeding in higher-order processes".
func hypercoreness(h *hypergraph.Hypergraph) map[string]float64 {
	scores := make(map[string]float64, h.NumNodes())
	for _, node := range h.Nodes() {
		scores[node] = 0
	}
	maxSize := h.MaxEdgeSize()
	for m := 2; m <= maxSize; m++ {
		core := coreNumbers(h, m)
		maxCore := 0
		for _, c := range core {
			if c > maxCore {
				maxCore = c
			}
		}
		if maxCore == 0 {
			continue
		}
		for node, c := range core {
			scores[node] += float64(c) / float64(maxCore)
		}
	}
	return scores
}

// coreNumbers peels the hypergraph at size threshold m: a node survives
// level k if it belongs to at least k edges whose surviving membership is
// still at least m.  The returned core number of a node is the deepest
// level it survives.
func coreNumbers(h *hypergraph.Hypergraph, m int) map[string]int {
	active := make(map[string]bool, h.NumNodes())
	core := make(map[string]int, h.NumNodes())
	for _, node := range h.Nodes() {
		active[node] = true
		core[node] = 0
	}
	for k := 1; len(active) > 0; k++ {
		for {
			removed := false
			for node := range active {
				if filteredDegree(h, node, m, active) < k {
					delete(active, node)
					removed = true
				}
			}
			if !removed {
				break
			}
		}
		for node := range active {
			core[node] = k
		}
	}
	return core
}

// filteredDegree counts the edges containing node whose active membership
// is at least m.
func filteredDegree(h *hypergraph.Hypergraph, node string, m int, active map[string]bool) int {
	degree := 0
	for _, edge := range h.EdgesOf(node) {
		surviving := 0
		for _, member := range h.Members(edge) {
			if active[member] {
				surviving++
			}
		}
		if surviving >= m {
			degree++
		}
	}
	return degree
}
