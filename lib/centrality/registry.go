package centrality

import (
	"math"
	"sort"

	"github.com/jaewan01/hypersweep/lib/errors"
	"github.com/jaewan01/hypersweep/lib/hypergraph"
)

// Func computes a centrality score per node or edge ID.  Scores are
// normalized so that they sum to 1.
type Func func(h *hypergraph.Hypergraph) (map[string]float64, error)

var nodeMeasures = map[string]Func{
	"degree":             nodeDegree,
	"neighbor_degree":    nodeNeighborDegree,
	"closeness":          nodeCloseness,
	"betweenness":        nodeBetweenness,
	"harmonic":           nodeHarmonic,
	"eigenvector":        nodeEigenvector,
	"pagerank":           nodePagerank,
	"uplift_eigenvector": nodeUpliftEigenvector,
	"hypercoreness":      nodeHypercoreness,
}

var edgeMeasures = map[string]Func{
	"degree":                edgeDegree,
	"line_expansion_degree": edgeLineExpansionDegree,
	"closeness":             edgeCloseness,
	"betweenness":           edgeBetweenness,
	"harmonic":              edgeHarmonic,
	"eigenvector":           edgeEigenvector,
	"pagerank":              edgePagerank,
	"hypercoreness":         edgeHypercoreness,
}

func Node(name string) (Func, error) {
	if f, ok := nodeMeasures[name]; ok {
		return f, nil
	}
	return nil, errors.New("unknown node measure %q", name)
}

func Edge(name string) (Func, error) {
	if f, ok := edgeMeasures[name]; ok {
		return f, nil
	}
	return nil, errors.New("unknown edge measure %q", name)
}

func Lookup(name string, edge bool) (Func, error) {
	if edge {
		return Edge(name)
	}
	return Node(name)
}

func NodeNames() []string {
	return sortedNames(nodeMeasures)
}

func EdgeNames() []string {
	return sortedNames(edgeMeasures)
}

func sortedNames(measures map[string]Func) []string {
	names := make([]string, 0, len(measures))
	for name := range measures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Normalize scales scores so that they sum to 1.  A zero vector becomes the
// uniform distribution so the normalization invariant always holds.
func Normalize(scores map[string]float64) map[string]float64 {
	if len(scores) == 0 {
		return scores
	}
	sum := 0.0
	for _, v := range scores {
		sum += v
	}
	normalized := make(map[string]float64, len(scores))
	if sum == 0 {
		uniform := 1.0 / float64(len(scores))
		for k := range scores {
			normalized[k] = uniform
		}
		return normalized
	}
	for k, v := range scores {
		normalized[k] = v / sum
	}
	return normalized
}

// VerifyNormalized checks the invariant every measure maintains.
func VerifyNormalized(scores map[string]float64) error {
	if len(scores) == 0 {
		return errors.New("no scores were computed")
	}
	sum := 0.0
	for _, v := range scores {
		sum += v
	}
	if math.Abs(sum-1) > 1e-6 {
		return errors.New("scores sum to %f, expected 1", sum)
	}
	return nil
}
