// Package build provides deterministic graph generators over core.Digraph.
//
// What
//
//   - Path(n): 0─1─…─(n-1).
//   - Cycle(n): a ring of n nodes.
//   - Star(n): node 0 linked to every other node.
//   - Complete(n): every admissible pair linked.
//   - RandomSparse(n, p, rng): Erdős–Rényi-style graph, each admissible pair
//     included independently with probability p.
//
// Why
//
//	Centrality tests and benchmarks need reference topologies with known
//	analytic answers (path betweenness, star degrees, cycle symmetry).
//	Generators keep those fixtures one call away and reproducible.
//
// Determinism
//
//	Nodes are allocated in ascending index order; edges are emitted in a
//	fixed scan order (i ascending, then j ascending). RandomSparse is fully
//	deterministic for a fixed *rand.Rand seed because the trial order is
//	fixed.
//
// Errors
//
//   - ErrTooFewNodes        if n is below the generator's minimum.
//   - ErrInvalidProbability if p lies outside [0, 1].
//   - ErrNilRand            if RandomSparse receives a nil random source.
package build
