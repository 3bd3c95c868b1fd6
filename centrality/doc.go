// Package centrality computes node-importance rankings over a core.Graph:
// degree, betweenness (Brandes), PageRank, personalized PageRank, and
// eigenvector centrality.
//
// What
//
//   - Degree:       score = outgoing-adjacency size. O(V).
//   - Betweenness:  Brandes' algorithm — per-source BFS with shortest-path
//     counts, then reverse-order dependency accumulation. Sources fan out
//     across a parallel executor; each worker owns a local accumulator and
//     the locals are merged in worker order after the join, so the
//     floating-point summation order is explicit and reproducible. O(V·E).
//   - PageRank:     power iteration, exactly MaxIter rounds, no convergence
//     check. Dangling nodes contribute no forward mass — their rank is not
//     redistributed. This deviates from canonical PageRank on purpose;
//     downstream consumers rely on it. O(MaxIter·(V+E)).
//   - Personalized: Monte-Carlo random walk with restart — Passes·V steps
//     from a center node, counting visits. Stochastic; inject a seeded
//     *rand.Rand via WithRand for reproducible runs. O(Passes·V).
//   - Eigenvector:  power iteration from the all-ones vector; the vector is
//     renormalized by its sum every round (rank-preserving, overflow-proof)
//     and the final result sums to 1 whenever any mass survives.
//     O(MaxIter·(V+E)).
//
// Why
//
//	"Which nodes matter?" is the first question asked of any graph —
//	dependency DAGs, citation networks, road maps, social graphs. These five
//	estimators cover the spectrum from structural (degree, betweenness) to
//	spectral (PageRank, eigenvector) to query-biased (personalized).
//
// Results
//
//	Every algorithm returns a Result: one Score per node, sorted by
//	descending value, ties broken by ascending NodeID. Calling a
//	deterministic algorithm twice on the same graph yields identical
//	results; Personalized is reproducible only under an injected seed.
//
// Concurrency
//
//	Only Betweenness runs concurrent work (one task per source node, no
//	inter-task dependencies). The graph is never mutated; per-source scratch
//	state is worker-private; the only shared write is the post-join merge.
//	The other algorithms are sequential — each power-iteration round depends
//	on the full previous vector, and the random walk is a single cursor.
//
// Usage
//
//	res, err := centrality.PageRank(g,
//	    centrality.WithDamping(0.85),
//	    centrality.WithMaxIter(50),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrInvalidDamping, or ErrOptionViolation
//	}
//	fmt.Println(res.Top(3))
//
// Options
//
//   - WithContext(ctx)    — cancellation between rounds / sources.
//   - WithDamping(d)      — damping factor, validated in [0,1] at call time.
//   - WithMaxIter(k)      — power-iteration round budget (k ≥ 0).
//   - WithPasses(p)       — walk length multiplier for Personalized (p ≥ 0).
//   - WithWorkers(w)      — betweenness fan-out width (0 → GOMAXPROCS).
//   - WithExecutor(e)     — custom Executor; default parallel.Pool.
//   - WithProgress(r)     — progress Reporter; default progress.Nop.
//   - WithRand(rng)       — seedable random source for Personalized.
//
// Errors
//
//   - ErrGraphNil         if the graph view is nil.
//   - ErrInvalidDamping   if the damping factor lies outside [0,1].
//   - ErrCenterOutOfRange if the personalized center is not a valid node.
//   - ErrOptionViolation  if an option value is out of domain.
package centrality
