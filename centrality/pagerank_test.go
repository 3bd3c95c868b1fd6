package centrality_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nodal/build"
	"github.com/katalvlaran/nodal/centrality"
	"github.com/katalvlaran/nodal/core"
	"github.com/katalvlaran/nodal/progress"
)

// TestPageRank_DampingValidation: -0.1 and 1.1 rejected, 0.0 and 1.0 accepted.
func TestPageRank_DampingValidation(t *testing.T) {
	g, err := build.Cycle(4, core.WithDirected(true))
	require.NoError(t, err)

	_, err = centrality.PageRank(g, centrality.WithDamping(-0.1))
	assert.ErrorIs(t, err, centrality.ErrInvalidDamping)
	_, err = centrality.PageRank(g, centrality.WithDamping(1.1))
	assert.ErrorIs(t, err, centrality.ErrInvalidDamping)

	_, err = centrality.PageRank(g, centrality.WithDamping(0.0))
	assert.NoError(t, err, "damping 0.0 is a valid boundary")
	_, err = centrality.PageRank(g, centrality.WithDamping(1.0))
	assert.NoError(t, err, "damping 1.0 is a valid boundary")
}

// TestPageRank_ZeroDampingIsUniform: with d=0 every round reduces to
// (1-0)/N, so the uniform distribution survives any iteration count.
func TestPageRank_ZeroDampingIsUniform(t *testing.T) {
	g, err := build.Star(8, core.WithDirected(true))
	require.NoError(t, err)
	n := float64(g.Order())

	for _, iters := range []int{1, 5, 50} {
		res, err := centrality.PageRank(g, centrality.WithDamping(0), centrality.WithMaxIter(iters))
		require.NoError(t, err)
		for _, s := range res {
			assert.InDelta(t, 1/n, s.Value, 1e-12, "iters=%d node=%d", iters, s.Node)
		}
	}
}

// TestPageRank_ScoresInUnitInterval holds for every iteration count ≥ 1 on
// a graph with no dangling nodes.
func TestPageRank_ScoresInUnitInterval(t *testing.T) {
	g, err := build.Cycle(6, core.WithDirected(true))
	require.NoError(t, err)

	for iters := 1; iters <= 20; iters++ {
		res, err := centrality.PageRank(g, centrality.WithMaxIter(iters))
		require.NoError(t, err)
		sum := 0.0
		for _, s := range res {
			assert.GreaterOrEqual(t, s.Value, 0.0, "iters=%d node=%d", iters, s.Node)
			assert.LessOrEqual(t, s.Value, 1.0, "iters=%d node=%d", iters, s.Node)
			sum += s.Value
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "no dangling nodes ⇒ mass conserved (iters=%d)", iters)
	}
}

// TestPageRank_CycleSymmetry: a directed ring is vertex-transitive, so every
// node holds exactly 1/N at any damping.
func TestPageRank_CycleSymmetry(t *testing.T) {
	g, err := build.Cycle(5, core.WithDirected(true))
	require.NoError(t, err)

	res, err := centrality.PageRank(g, centrality.WithDamping(0.85), centrality.WithMaxIter(40))
	require.NoError(t, err)
	for _, s := range res {
		assert.InDelta(t, 0.2, s.Value, 1e-9, "node %d", s.Node)
	}
}

// TestPageRank_DanglingMassLeaks: dangling rank is deliberately not
// redistributed, so the total drifts below 1.
func TestPageRank_DanglingMassLeaks(t *testing.T) {
	g, err := build.Path(3, core.WithDirected(true)) // 0→1→2, node 2 dangling
	require.NoError(t, err)

	res, err := centrality.PageRank(g, centrality.WithDamping(0.85), centrality.WithMaxIter(10))
	require.NoError(t, err)

	sum := 0.0
	for _, s := range res {
		sum += s.Value
	}
	assert.Less(t, sum, 1.0, "dangling node must leak mass")
	assert.Greater(t, sum, 0.0)
}

// TestPageRank_ZeroIterations returns the uniform initial vector untouched.
func TestPageRank_ZeroIterations(t *testing.T) {
	g, err := build.Star(4, core.WithDirected(true))
	require.NoError(t, err)

	res, err := centrality.PageRank(g, centrality.WithMaxIter(0))
	require.NoError(t, err)
	for _, s := range res {
		assert.InDelta(t, 0.25, s.Value, 1e-12)
	}
}

// TestPageRank_HubRanksFirst: every leaf of an inward star links to node 0.
func TestPageRank_HubRanksFirst(t *testing.T) {
	g := core.NewDigraph(core.WithDirected(true))
	g.AddNodes(5)
	for i := core.NodeID(1); i < 5; i++ {
		require.NoError(t, g.AddEdge(i, 0, 1))
	}

	res, err := centrality.PageRank(g, centrality.WithMaxIter(20))
	require.NoError(t, err)
	assert.Equal(t, core.NodeID(0), res[0].Node, "all inbound links concentrate rank on the hub")
}

// TestPageRank_Idempotent verifies exact reproducibility.
func TestPageRank_Idempotent(t *testing.T) {
	g, err := build.Complete(9, core.WithDirected(true))
	require.NoError(t, err)

	a, err := centrality.PageRank(g)
	require.NoError(t, err)
	b, err := centrality.PageRank(g)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

// TestPageRank_ProgressAndCancellation covers the ambient plumbing.
func TestPageRank_ProgressAndCancellation(t *testing.T) {
	g, err := build.Cycle(4, core.WithDirected(true))
	require.NoError(t, err)

	var rep progress.Counter
	_, err = centrality.PageRank(g, centrality.WithMaxIter(7), centrality.WithProgress(&rep))
	require.NoError(t, err)
	assert.Equal(t, int64(7), rep.Ticks(), "one tick per round")
	assert.True(t, rep.Finished())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := centrality.PageRank(g, centrality.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}
