package centrality

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/nodal/core"
)

// Personalized estimates personalized PageRank around center by Monte-Carlo
// random walk with restart.
//
// A cursor starts at center and performs Passes·Order() steps. Each step
// counts a visit to the cursor's node, then draws u ∈ [0,1): with u < d the
// cursor moves to a uniformly random out-neighbor (resetting to center when
// the node is dangling); otherwise it resets to center. The visit counts are
// the unnormalized scores.
//
// This is a stochastic estimator — it converges to the true personalized
// PageRank distribution only in expectation as the walk grows. Inject a
// seeded source via WithRand for exact reproducibility; the default source
// is seeded from the clock at call time.
//
// Options honored: WithDamping, WithPasses, WithRand, WithProgress.
// Progress ticks once per pass (Order() steps).
//
// Complexity: O(Passes·V) steps, O(V) space. Sequential by construction —
// a single evolving cursor admits no parallelism without switching to an
// independent-walk reduction.
func Personalized(g core.Graph, center core.NodeID, opts ...Option) (Result, error) {
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
	if center < 0 || int(center) >= n {
		return nil, fmt.Errorf("%w: center=%d order=%d", ErrCenterOutOfRange, center, n)
	}

	rng := o.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	visits := make([]float64, n)
	cur := center
	for pass := 0; pass < o.Passes; pass++ {
		for step := 0; step < n; step++ {
			visits[cur]++
			if rng.Float64() >= o.Damping {
				cur = center

				continue
			}
			arcs := g.Adjacent(cur)
			if len(arcs) == 0 {
				// dangling cursor: restart instead of moving
				cur = center

				continue
			}
			cur = arcs[rng.Intn(len(arcs))].To
		}
		o.Progress.Tick(1)
	}
	o.Progress.Finish()

	return newResult(visits), nil
}
