// Package core defines the dense graph primitives shared by every algorithm
// in nodal: NodeID, Arc, the read-only Graph view, and the concrete Digraph.
//
// What
//
//   - NodeID is a dense non-negative integer, always valid in [0, Order()),
//     so per-node state can live in plain slices instead of maps.
//   - Graph is the narrow read-only view consumed by centrality algorithms:
//     Order, Adjacent (outgoing arcs), Incoming (predecessor IDs).
//   - Digraph is the in-memory implementation: directed or undirected,
//     optionally weighted, optionally allowing self-loops.
//
// Why
//
//   - Centrality computations touch every node and edge many times; dense
//     indices keep the hot loops allocation-free and cache-friendly.
//   - A small interface lets callers plug in their own storage (a column
//     store, an mmap'd snapshot) without touching the algorithms.
//
// Concurrency
//
//	Digraph guards its storage with a single sync.RWMutex, so graphs may be
//	assembled from several goroutines. Algorithms treat the graph as
//	immutable for the duration of a call; mutating the graph concurrently
//	with a centrality computation is the caller's race to lose.
//
// Determinism
//
//	Adjacent and Incoming return arcs in edge-insertion order, and the
//	returned slices are fresh copies. Iteration over nodes is simply
//	for id := 0; id < g.Order(); id++ — fully reproducible.
//
// Errors
//
//   - ErrNodeOutOfRange  if an endpoint is negative or ≥ Order().
//   - ErrBadWeight       if a non-unit weight is given to an unweighted graph.
//   - ErrLoopNotAllowed  if a self-loop is added while loops are disabled.
package core
