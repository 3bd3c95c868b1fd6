package centrality

import (
	"runtime"

	"github.com/katalvlaran/nodal/core"
	"github.com/katalvlaran/nodal/parallel"
)

// Betweenness computes Brandes' betweenness centrality: for every node, the
// sum over all (s,t) pairs of the fraction of shortest s→t paths passing
// through it. Edges are treated as unweighted hops; parallel shortest paths
// split credit proportionally through the sigma counters.
//
// Sources fan out across the configured Executor. The shared-accumulator
// design is replaced by per-stripe local accumulators merged after the join
// in stripe order, so no lock guards the hot path and the floating-point
// summation order is fixed: repeated runs with the same worker count are
// bit-for-bit identical. Different worker counts change the stripe layout
// and may differ in the last ulp of accumulated sums.
//
// Options honored: WithContext, WithWorkers, WithExecutor, WithProgress.
// Progress ticks once per completed source; Finish fires before return.
//
// Complexity: O(V·E) time overall, O(V+E) space per worker.
func Betweenness(g core.Graph, opts ...Option) (Result, error) {
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

	exec := o.Exec
	if exec == nil {
		pool, perr := parallel.NewPool(o.Workers)
		if perr != nil {
			return nil, perr
		}
		exec = pool
	}

	// One local accumulator per stripe; stripe c owns sources c, c+stripes, …
	// Worker-private scratch state is reused across that stripe's sources.
	stripes := stripeCount(o.Workers, n)
	locals := make([][]float64, stripes)
	err = exec.ForEach(o.Ctx, stripes, func(c int) {
		local := make([]float64, n)
		st := newBrandesState(n)
		for s := c; s < n; s += stripes {
			st.run(g, core.NodeID(s), local)
			o.Progress.Tick(1)
		}
		locals[c] = local
	})
	if err != nil {
		return nil, err
	}

	// Explicit reduction: merge stripe accumulators in stripe order.
	total := make([]float64, n)
	for _, local := range locals {
		for i, v := range local {
			total[i] += v
		}
	}
	o.Progress.Finish()

	return newResult(total), nil
}

// stripeCount picks how many source stripes to cut: the worker bound, capped
// by the node count so no stripe is empty.
func stripeCount(workers, n int) int {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers < n {
		return workers
	}

	return n
}

// brandesState is the per-worker scratch for one source step: BFS distances,
// shortest-path counts, predecessor lists, dependency accumulators, and the
// discovery stack. Reused across sources to keep the hot loop allocation-free.
type brandesState struct {
	dist    []int
	sigma   []float64
	delta   []float64
	parents [][]core.NodeID
	stack   []core.NodeID
	queue   []core.NodeID
}

func newBrandesState(n int) *brandesState {
	return &brandesState{
		dist:    make([]int, n),
		sigma:   make([]float64, n),
		delta:   make([]float64, n),
		parents: make([][]core.NodeID, n),
		stack:   make([]core.NodeID, 0, n),
		queue:   make([]core.NodeID, 0, n),
	}
}

// run executes one source step of Brandes' algorithm from s and adds the
// resulting dependencies into acc.
//
// Phase 1 — BFS over unweighted edges, recording for every reached w:
// shortest distance dist[w], number of shortest paths sigma[w] (sigma[s]=1),
// and the BFS-predecessors parents[w] (each v adjacent to w with
// dist[w] = dist[v]+1). The discovery order doubles as the stack.
//
// Phase 2 — pop nodes in non-increasing distance and back-propagate:
// delta[v] += (sigma[v]/sigma[w])·(1+delta[w]) for every predecessor v of w;
// every w ≠ s then contributes delta[w] to acc[w].
func (st *brandesState) run(g core.Graph, s core.NodeID, acc []float64) {
	for i := range st.dist {
		st.dist[i] = -1
		st.sigma[i] = 0
		st.delta[i] = 0
		st.parents[i] = st.parents[i][:0]
	}
	st.stack = st.stack[:0]
	st.queue = st.queue[:0]

	st.dist[s] = 0
	st.sigma[s] = 1
	st.queue = append(st.queue, s)

	for head := 0; head < len(st.queue); head++ {
		v := st.queue[head]
		st.stack = append(st.stack, v)
		for _, arc := range g.Adjacent(v) {
			w := arc.To
			if st.dist[w] < 0 {
				st.dist[w] = st.dist[v] + 1
				st.queue = append(st.queue, w)
			}
			if st.dist[w] == st.dist[v]+1 {
				st.sigma[w] += st.sigma[v]
				st.parents[w] = append(st.parents[w], v)
			}
		}
	}

	for i := len(st.stack) - 1; i >= 0; i-- {
		w := st.stack[i]
		for _, v := range st.parents[w] {
			st.delta[v] += st.sigma[v] / st.sigma[w] * (1 + st.delta[w])
		}
		if w != s {
			acc[w] += st.delta[w]
		}
	}
}
