package parallel

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrBadWorkers is returned when a negative worker count is requested.
var ErrBadWorkers = errors.New("parallel: worker count must be non-negative")

// Pool runs independent tasks with a fixed concurrency bound.
// The zero value is not usable; construct with NewPool.
type Pool struct {
	workers int
}

// NewPool builds a Pool with the given concurrency bound.
// workers == 0 selects runtime.GOMAXPROCS(0); workers < 0 is ErrBadWorkers.
func NewPool(workers int) (*Pool, error) {
	if workers < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadWorkers, workers)
	}
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &Pool{workers: workers}, nil
}

// Workers returns the concurrency bound.
func (p *Pool) Workers() int { return p.workers }

// ForEach invokes fn(i) for every i in [0, n), running at most Workers()
// invocations concurrently. It blocks until every launched task has
// finished. Tasks already running when the context is cancelled run to
// completion; unlaunched indices are skipped and the context error is
// returned.
func (p *Pool) ForEach(ctx context.Context, n int, fn func(i int)) error {
	if n <= 0 {
		return ctx.Err()
	}

	grp := new(errgroup.Group)
	grp.SetLimit(p.workers)

	for i := 0; i < n; i++ {
		// cancellation check between launches (Go blocks at the limit,
		// so this is also the back-pressure point)
		select {
		case <-ctx.Done():
			_ = grp.Wait()

			return ctx.Err()
		default:
		}

		i := i
		grp.Go(func() error {
			fn(i)

			return nil
		})
	}
	_ = grp.Wait()

	return ctx.Err()
}
