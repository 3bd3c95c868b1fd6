// Package nodal is an in-memory toolkit for ranking nodes by importance —
// from trivial degree counts to Brandes' betweenness and power-iteration
// PageRank.
//
// 🚀 What is nodal?
//
//	A compact, thread-aware library that brings together:
//		• Core primitives: dense-indexed directed/undirected graphs, built safely under locks
//		• Generators: paths, cycles, stars, complete and random sparse graphs for tests & benchmarks
//		• Centrality: degree, betweenness (parallel Brandes), PageRank,
//		  personalized PageRank (random walk with restart), eigenvector centrality
//		• Plumbing: a bounded parallel executor and pluggable progress reporters
//
// ✨ Why choose nodal?
//
//   - Predictable – deterministic results, explicit tie-breaks, seedable randomness
//   - Rock-solid guarantees – sentinel errors, validated parameters, no panics on valid graphs
//   - Parallel where it pays – betweenness fans out across source nodes with
//     per-worker accumulators and an explicit reduction step
//   - Extensible – swap in your own Graph view, Executor, or Progress reporter
//
// Under the hood, everything is organized under five subpackages:
//
//	core/       — NodeID, Arc, the read-only Graph view and the Digraph builder
//	build/      — deterministic graph generators
//	centrality/ — the five ranking algorithms
//	parallel/   — errgroup-backed bounded executor
//	progress/   — tick/finish reporters (no-op, counter, func adapter)
//
// Quick ASCII example:
//
//	    0───1───2───3───4
//
//	a path of five nodes: betweenness ranks node 2 highest, the endpoints lowest.
//
// Dive into examples/ for runnable demos and centrality/doc.go for the
// algorithmic contracts.
//
//	go get github.com/katalvlaran/nodal
package nodal
