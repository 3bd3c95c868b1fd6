// Package centrality declares the Result type, collaborator interfaces,
// sentinel errors, and the functional options shared by the algorithms.
package centrality

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/nodal/core"
	"github.com/katalvlaran/nodal/progress"
)

// Sentinel errors for centrality computations.
var (
	// ErrGraphNil is returned if a nil graph view is passed.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrInvalidDamping is returned when a damping factor lies outside [0,1].
	ErrInvalidDamping = errors.New("centrality: damping factor must lie in [0,1]")

	// ErrCenterOutOfRange is returned when the personalized-walk center is
	// not a valid NodeID of the graph.
	ErrCenterOutOfRange = errors.New("centrality: center node out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("centrality: invalid option supplied")
)

// Default parameters.
const (
	// DefaultDamping is the conventional PageRank damping factor.
	DefaultDamping = 0.85

	// DefaultMaxIter is the power-iteration round budget.
	DefaultMaxIter = 100

	// DefaultPasses multiplies the node count into the personalized walk length.
	DefaultPasses = 10
)

// Score pairs a node with its centrality value.
type Score struct {
	// Node is the ranked node.
	Node core.NodeID

	// Value is the (algorithm-specific) importance score.
	Value float64
}

// Result holds one Score per node, sorted by descending Value; equal values
// are ordered by ascending NodeID, so rankings are fully deterministic.
type Result []Score

// Top returns the k highest-ranked scores (all of them when k exceeds the
// result length). The returned slice shares backing storage with r.
func (r Result) Top(k int) Result {
	if k < 0 {
		k = 0
	}
	if k > len(r) {
		k = len(r)
	}

	return r[:k]
}

// Value returns the score of the given node and whether it is present.
func (r Result) Value(id core.NodeID) (float64, bool) {
	for _, s := range r {
		if s.Node == id {
			return s.Value, true
		}
	}

	return 0, false
}

// newResult wraps a dense score vector into a sorted Result.
// Insertion order follows node iteration order (ascending NodeID), then the
// slice is sorted by descending value with the ascending-ID tie-break.
func newResult(scores []float64) Result {
	res := make(Result, len(scores))
	for i, v := range scores {
		res[i] = Score{Node: core.NodeID(i), Value: v}
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Value != res[j].Value {
			return res[i].Value > res[j].Value
		}

		return res[i].Node < res[j].Node
	})

	return res
}

// Executor fans a function out over an index range. Implementations give no
// ordering guarantee between tasks but must join every launched task before
// returning. parallel.Pool is the default implementation.
type Executor interface {
	ForEach(ctx context.Context, n int, fn func(i int)) error
}

// Progress receives cosmetic heartbeats; see the progress package for
// ready-made implementations. Tick may be called concurrently.
type Progress interface {
	Tick(n int)
	Finish()
}

// Option configures an algorithm via functional arguments. An invalid
// Option (negative iteration budget, negative worker count) is recorded
// internally and surfaced as ErrOptionViolation when the algorithm runs.
type Option func(*Options)

// Options holds the tunable parameters shared by the algorithms. Each
// algorithm reads only the fields it documents and ignores the rest.
type Options struct {
	// Ctx allows cancellation between iteration rounds / source tasks.
	Ctx context.Context

	// Damping is the PageRank damping factor, or the restart-avoidance
	// probability of the personalized walk. Validated in [0,1] at call time.
	Damping float64

	// MaxIter is the fixed power-iteration budget; no convergence check is
	// performed, every call runs exactly MaxIter rounds.
	MaxIter int

	// Passes scales the personalized walk: total steps = Passes · Order().
	Passes int

	// Workers bounds betweenness fan-out; 0 selects GOMAXPROCS.
	Workers int

	// Exec runs betweenness source tasks; nil selects a parallel.Pool
	// with Workers workers.
	Exec Executor

	// Progress receives heartbeats; never affects results.
	Progress Progress

	// Rand drives the personalized walk; nil selects a time-seeded source.
	Rand *rand.Rand

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the package defaults: background
// context, damping 0.85, 100 iterations, 10 passes, GOMAXPROCS workers,
// no-op progress, call-time-seeded randomness.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Damping:  DefaultDamping,
		MaxIter:  DefaultMaxIter,
		Passes:   DefaultPasses,
		Workers:  0,
		Exec:     nil,
		Progress: progress.Nop{},
		Rand:     nil,
		err:      nil,
	}
}

// buildOptions applies opts over the defaults and surfaces recorded
// violations.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDamping sets the damping factor. The value is validated at call time:
// anything outside [0,1] aborts with ErrInvalidDamping before any
// computation begins.
func WithDamping(d float64) Option {
	return func(o *Options) { o.Damping = d }
}

// WithMaxIter sets the power-iteration round budget.
//
//	k ≥ 0: run exactly k rounds
//	k < 0: invalid option → ErrOptionViolation
func WithMaxIter(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxIter cannot be negative (%d)", ErrOptionViolation, k)

			return
		}
		o.MaxIter = k
	}
}

// WithPasses sets the personalized-walk length multiplier.
//
//	p ≥ 0: walk Passes·Order() steps
//	p < 0: invalid option → ErrOptionViolation
func WithPasses(p int) Option {
	return func(o *Options) {
		if p < 0 {
			o.err = fmt.Errorf("%w: Passes cannot be negative (%d)", ErrOptionViolation, p)

			return
		}
		o.Passes = p
	}
}

// WithWorkers bounds the betweenness fan-out width.
//
//	w > 0:  at most w concurrent source tasks
//	w == 0: explicit GOMAXPROCS default
//	w < 0:  invalid option → ErrOptionViolation
func WithWorkers(w int) Option {
	return func(o *Options) {
		if w < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, w)

			return
		}
		o.Workers = w
	}
}

// WithExecutor injects a custom Executor for betweenness source tasks.
func WithExecutor(e Executor) Option {
	return func(o *Options) {
		if e != nil {
			o.Exec = e
		}
	}
}

// WithProgress injects a progress Reporter.
func WithProgress(r Progress) Option {
	return func(o *Options) {
		if r != nil {
			o.Progress = r
		}
	}
}

// WithRand injects a seedable random source, making the personalized walk
// fully reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}
