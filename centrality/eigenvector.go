package centrality

import "github.com/katalvlaran/nodal/core"

// Eigenvector computes eigenvector centrality by power iteration.
//
// The vector starts at all ones. Each round pushes every node's mass along
// its outgoing arcs — w[arc.To] += v[i] — then renormalizes w by its sum.
// The per-round renormalization changes nothing about the final ranking or
// values (the map is linear and the closing normalization divides by the
// sum anyway) but keeps intermediate magnitudes bounded, so long runs on
// dense clusters neither overflow nor vanish. After MaxIter rounds the
// result sums to 1 whenever any mass survives; if the mass dies out (e.g. a
// DAG drained past its sinks) every score is exactly 0 rather than NaN.
//
// Options honored: WithContext, WithMaxIter, WithProgress.
// Progress ticks once per round.
//
// Complexity: O(MaxIter·(V+E)) time, O(V) space.
func Eigenvector(g core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	n := g.Order()
	if n == 0 {
		o.Progress.Finish()

		return Result{}, nil
	}

	v := make([]float64, n)
	w := make([]float64, n)
	for i := range v {
		v[i] = 1
	}

	for iter := 0; iter < o.MaxIter; iter++ {
		// cancellation check between rounds
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		for i := range w {
			w[i] = 0
		}
		for i := 0; i < n; i++ {
			if v[i] == 0 {
				continue
			}
			for _, arc := range g.Adjacent(core.NodeID(i)) {
				w[arc.To] += v[i]
			}
		}
		normalize(w)
		v, w = w, v
		o.Progress.Tick(1)
	}
	normalize(v)
	o.Progress.Finish()

	return newResult(v), nil
}

// normalize divides the vector by its entry sum when that sum is positive;
// a zero vector stays zero.
func normalize(v []float64) {
	sum := 0.0
	for _, x := range v {
		sum += x
	}
	if sum <= 0 {
		return
	}
	for i := range v {
		v[i] /= sum
	}
}
