package build

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/nodal/core"
)

// Sentinel errors for the generators.
var (
	// ErrTooFewNodes indicates n is below the generator's minimum.
	ErrTooFewNodes = errors.New("build: too few nodes")

	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("build: probability must lie in [0,1]")

	// ErrNilRand indicates RandomSparse was called without a random source.
	ErrNilRand = errors.New("build: nil random source")
)

// Generator minima. A path or star needs two nodes; a cycle needs three.
const (
	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2
)

const unitWeight = 1.0

// Path builds the path graph 0─1─…─(n-1). Requires n ≥ 2.
// Complexity: O(n).
func Path(n int, opts ...core.GraphOption) (*core.Digraph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewNodes)
	}

	g := core.NewDigraph(opts...)
	g.AddNodes(n)
	for i := 1; i < n; i++ {
		if err := g.AddEdge(core.NodeID(i-1), core.NodeID(i), unitWeight); err != nil {
			return nil, fmt.Errorf("Path: edge %d→%d: %w", i-1, i, err)
		}
	}

	return g, nil
}

// Cycle builds a ring 0─1─…─(n-1)─0. Requires n ≥ 3.
// Complexity: O(n).
func Cycle(n int, opts ...core.GraphOption) (*core.Digraph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewNodes)
	}

	g := core.NewDigraph(opts...)
	g.AddNodes(n)
	for i := 0; i < n; i++ {
		next := core.NodeID((i + 1) % n)
		if err := g.AddEdge(core.NodeID(i), next, unitWeight); err != nil {
			return nil, fmt.Errorf("Cycle: edge %d→%d: %w", i, next, err)
		}
	}

	return g, nil
}

// Star links node 0 to every other node. Requires n ≥ 2.
// Complexity: O(n).
func Star(n int, opts ...core.GraphOption) (*core.Digraph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewNodes)
	}

	g := core.NewDigraph(opts...)
	g.AddNodes(n)
	for i := 1; i < n; i++ {
		if err := g.AddEdge(0, core.NodeID(i), unitWeight); err != nil {
			return nil, fmt.Errorf("Star: edge 0→%d: %w", i, err)
		}
	}

	return g, nil
}

// Complete links every admissible pair: unordered pairs {i,j}, i<j, on
// undirected graphs; ordered pairs (i,j), i≠j, on directed ones.
// Requires n ≥ 2. Complexity: O(n²).
func Complete(n int, opts ...core.GraphOption) (*core.Digraph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewNodes)
	}

	g := core.NewDigraph(opts...)
	g.AddNodes(n)
	for i := 0; i < n; i++ {
		start := i + 1
		if g.Directed() {
			start = 0
		}
		for j := start; j < n; j++ {
			if i == j {
				continue
			}
			if err := g.AddEdge(core.NodeID(i), core.NodeID(j), unitWeight); err != nil {
				return nil, fmt.Errorf("Complete: edge %d→%d: %w", i, j, err)
			}
		}
	}

	return g, nil
}

// RandomSparse samples each admissible pair independently with probability p
// using rng. Trial order is fixed (i asc, then j asc), so a seeded rng
// reproduces the same graph. Requires n ≥ 1, p ∈ [0,1], rng non-nil.
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64, rng *rand.Rand, opts ...core.GraphOption) (*core.Digraph, error) {
	if n < 1 {
		return nil, fmt.Errorf("RandomSparse: n=%d < min=1: %w", n, ErrTooFewNodes)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%v: %w", p, ErrInvalidProbability)
	}
	if rng == nil {
		return nil, fmt.Errorf("RandomSparse: %w", ErrNilRand)
	}

	g := core.NewDigraph(opts...)
	g.AddNodes(n)
	for i := 0; i < n; i++ {
		start := i + 1
		if g.Directed() {
			start = 0
		}
		for j := start; j < n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() >= p {
				continue
			}
			if err := g.AddEdge(core.NodeID(i), core.NodeID(j), unitWeight); err != nil {
				return nil, fmt.Errorf("RandomSparse: edge %d→%d: %w", i, j, err)
			}
		}
	}

	return g, nil
}
