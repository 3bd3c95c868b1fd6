package centrality

import "github.com/katalvlaran/nodal/core"

// PageRank computes the power-iteration PageRank of every node.
//
// The score vector starts uniform at 1/N. Each round computes, for every
// node i:
//
//	w[i] = (1-d)/N + d · Σ_{n ∈ Incoming(i)} v[n] / outdeg(n)
//
// then swaps v and w. Exactly MaxIter rounds run — there is no convergence
// check. Dangling nodes (outdegree zero) contribute no forward mass: their
// stored rank is never redistributed, so totals drift below 1 on graphs
// containing them. That is the contract, not a bug — do not "fix" it to the
// canonical uniform redistribution.
//
// Options honored: WithContext, WithDamping, WithMaxIter, WithProgress.
// Progress ticks once per round. The damping factor is validated in [0,1]
// before any computation; violations abort with ErrInvalidDamping.
//
// Complexity: O(MaxIter·(V+E)) time, O(V) space.
func PageRank(g core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if o.Damping < 0 || o.Damping > 1 {
		return nil, ErrInvalidDamping
	}

	n := g.Order()
	if n == 0 {
		o.Progress.Finish()

		return Result{}, nil
	}

	// Outdegrees are fixed for the whole call; snapshot them once.
	outdeg := make([]float64, n)
	for i := 0; i < n; i++ {
		outdeg[i] = float64(len(g.Adjacent(core.NodeID(i))))
	}

	base := (1 - o.Damping) / float64(n)
	v := make([]float64, n)
	w := make([]float64, n)
	for i := range v {
		v[i] = 1 / float64(n)
	}

	for iter := 0; iter < o.MaxIter; iter++ {
		// cancellation check between rounds
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		for i := 0; i < n; i++ {
			sum := 0.0
			for _, p := range g.Incoming(core.NodeID(i)) {
				// p has an edge into i, so outdeg[p] ≥ 1
				sum += v[p] / outdeg[p]
			}
			w[i] = base + o.Damping*sum
		}
		v, w = w, v
		o.Progress.Tick(1)
	}
	o.Progress.Finish()

	return newResult(v), nil
}
