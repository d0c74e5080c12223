package centrality

import (
	"math"

	"github.com/jaewan01/hypersweep/lib/errors"
)

const (
	maxIterations = 100
	tolerance     = 1e-6
)

type weightedNeighbor struct {
	index  int
	weight float64
}

// powerIterate runs L1-normalized power iteration on a non-negative
// adjacency list and returns the dominant eigenvector.  The iteration
// starts from the uniform vector and stops when the L1 change falls below
// tolerance; exceeding maxIterations is an error, matching the behavior of
// the computations this tool sweeps.
func powerIterate(adjacency [][]weightedNeighbor) ([]float64, error) {
	n := len(adjacency)
	if n == 0 {
		return nil, errors.New("empty adjacency")
	}
	current := make([]float64, n)
	next := make([]float64, n)
	for i := range current {
		current[i] = 1.0 / float64(n)
	}
	for iteration := 0; iteration < maxIterations; iteration++ {
		sum := 0.0
		for i := range next {
			value := 0.0
			for _, neighbor := range adjacency[i] {
				value += neighbor.weight * current[neighbor.index]
			}
			next[i] = value
			sum += value
		}
		if sum == 0 {
			// No edges at all; the uniform vector is the fixed point.
			return current, nil
		}
		diff := 0.0
		for i := range next {
			next[i] /= sum
			diff += math.Abs(next[i] - current[i])
		}
		current, next = next, current
		if diff < tolerance {
			return current, nil
		}
	}
	return nil, errors.New("power iteration did not converge within %d iterations", maxIterations)
}

// graphAdjacency builds the adjacency list form powerIterate consumes,
// with unit weights.
func graphAdjacency(n int, hasEdge func(i, j int) bool) [][]weightedNeighbor {
	adjacency := make([][]weightedNeighbor, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && hasEdge(i, j) {
				adjacency[i] = append(adjacency[i], weightedNeighbor{index: j, weight: 1})
			}
		}
	}
	return adjacency
}
