package centrality_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nodal/build"
	"github.com/katalvlaran/nodal/centrality"
	"github.com/katalvlaran/nodal/core"
	"github.com/katalvlaran/nodal/progress"
)

// TestPersonalized_Validation covers damping and center-range checks.
func TestPersonalized_Validation(t *testing.T) {
	g, err := build.Cycle(4, core.WithDirected(true))
	require.NoError(t, err)

	_, err = centrality.Personalized(g, 0, centrality.WithDamping(-0.1))
	assert.ErrorIs(t, err, centrality.ErrInvalidDamping)
	_, err = centrality.Personalized(g, 0, centrality.WithDamping(1.1))
	assert.ErrorIs(t, err, centrality.ErrInvalidDamping)

	_, err = centrality.Personalized(g, -1)
	assert.ErrorIs(t, err, centrality.ErrCenterOutOfRange)
	_, err = centrality.Personalized(g, 4)
	assert.ErrorIs(t, err, centrality.ErrCenterOutOfRange)
}

// TestPersonalized_ZeroDampingStaysHome: with d=0 every step resets to the
// center, so the whole distribution concentrates there.
func TestPersonalized_ZeroDampingStaysHome(t *testing.T) {
	g, err := build.Star(5)
	require.NoError(t, err)
	const center, passes = 2, 4

	res, err := centrality.Personalized(g, center,
		centrality.WithDamping(0),
		centrality.WithPasses(passes),
	)
	require.NoError(t, err)

	home, _ := res.Value(center)
	assert.Equal(t, float64(passes*g.Order()), home, "every step lands on the center")
	assert.Equal(t, core.NodeID(center), res[0].Node)
	for _, s := range res[1:] {
		assert.Zero(t, s.Value, "node %d must be unvisited", s.Node)
	}
}

// TestPersonalized_FullDampingOnRing: with d=1 the cursor never restarts;
// on a directed ring it sweeps round and round, visiting each node exactly
// Passes times.
func TestPersonalized_FullDampingOnRing(t *testing.T) {
	const n, passes = 6, 5
	g, err := build.Cycle(n, core.WithDirected(true))
	require.NoError(t, err)

	res, err := centrality.Personalized(g, 0,
		centrality.WithDamping(1),
		centrality.WithPasses(passes),
	)
	require.NoError(t, err)
	for _, s := range res {
		assert.Equal(t, float64(passes), s.Value, "node %d", s.Node)
	}
}

// TestPersonalized_VisitBudget: total visits always equal Passes·Order().
func TestPersonalized_VisitBudget(t *testing.T) {
	const passes = 7
	g, err := build.Complete(9)
	require.NoError(t, err)

	res, err := centrality.Personalized(g, 3,
		centrality.WithPasses(passes),
		centrality.WithRand(rand.New(rand.NewSource(99))),
	)
	require.NoError(t, err)

	total := 0.0
	for _, s := range res {
		total += s.Value
	}
	assert.Equal(t, float64(passes*g.Order()), total)
}

// TestPersonalized_SeededReproducibility: identical seeds replay the walk
// exactly; different seeds are overwhelmingly likely to diverge.
func TestPersonalized_SeededReproducibility(t *testing.T) {
	g, err := build.RandomSparse(40, 0.15, rand.New(rand.NewSource(5)), core.WithDirected(true))
	require.NoError(t, err)

	run := func(seed int64) centrality.Result {
		res, err := centrality.Personalized(g, 0,
			centrality.WithPasses(20),
			centrality.WithRand(rand.New(rand.NewSource(seed))),
		)
		require.NoError(t, err)

		return res
	}

	require.Equal(t, run(1234), run(1234), "same seed ⇒ identical walk")
	assert.NotEqual(t, run(1234), run(4321), "different seeds should diverge")
}

// TestPersonalized_DanglingRestarts: a center with no outgoing edges can
// only ever restart, so all mass stays at the center even at full damping.
func TestPersonalized_DanglingRestarts(t *testing.T) {
	g := core.NewDigraph(core.WithDirected(true))
	g.AddNodes(3)
	require.NoError(t, g.AddEdge(0, 2, 1)) // node 1 is dangling

	res, err := centrality.Personalized(g, 1,
		centrality.WithDamping(1),
		centrality.WithPasses(3),
	)
	require.NoError(t, err)

	home, _ := res.Value(1)
	assert.Equal(t, float64(3*g.Order()), home)
}

// TestPersonalized_Progress ticks once per pass.
func TestPersonalized_Progress(t *testing.T) {
	g, err := build.Cycle(5)
	require.NoError(t, err)

	var rep progress.Counter
	_, err = centrality.Personalized(g, 0,
		centrality.WithPasses(6),
		centrality.WithProgress(&rep),
	)
	require.NoError(t, err)
	assert.Equal(t, int64(6), rep.Ticks())
	assert.True(t, rep.Finished())
}
