package progress

import "sync/atomic"

// Reporter consumes progress heartbeats. Implementations must be safe for
// concurrent Tick calls; ticks are cosmetic and may be dropped freely.
type Reporter interface {
	// Tick reports n additional units of completed work.
	Tick(n int)

	// Finish signals that the computation is complete.
	Finish()
}

// Nop is a Reporter that discards all signals.
type Nop struct{}

// Tick implements Reporter.
func (Nop) Tick(int) {}

// Finish implements Reporter.
func (Nop) Finish() {}

// Counter is a Reporter that atomically accumulates ticks.
// The zero value is ready to use.
type Counter struct {
	ticks    int64
	finished int32
}

// Tick implements Reporter.
func (c *Counter) Tick(n int) { atomic.AddInt64(&c.ticks, int64(n)) }

// Finish implements Reporter.
func (c *Counter) Finish() { atomic.StoreInt32(&c.finished, 1) }

// Ticks returns the total units reported so far.
func (c *Counter) Ticks() int64 { return atomic.LoadInt64(&c.ticks) }

// Finished reports whether Finish has been called.
func (c *Counter) Finished() bool { return atomic.LoadInt32(&c.finished) == 1 }

// Func adapts a callback into a Reporter. The callback receives the tick
// delta; Finish invokes it with n == 0 after setting done.
type Func func(n int, done bool)

// Tick implements Reporter.
func (f Func) Tick(n int) { f(n, false) }

// Finish implements Reporter.
func (f Func) Finish() { f(0, true) }
