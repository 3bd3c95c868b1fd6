// Package progress defines cosmetic progress reporting for long-running
// computations.
//
// What
//
//   - Reporter receives monotonic tick counts while work advances and a
//     final Finish call when it completes.
//   - Nop discards everything (the default wired into centrality).
//   - Counter accumulates ticks atomically — handy in tests and for polling
//     from another goroutine.
//   - Func adapts a plain callback into a Reporter.
//
// Why
//
//	Betweenness over a large graph can run for minutes; callers want a
//	heartbeat without the engine knowing anything about terminals or logs.
//	Reporters are side-effect-only: lost or reordered ticks never affect
//	algorithm results.
//
// Concurrency
//
//	Tick may be called from many goroutines at once; implementations must
//	tolerate that. Finish is called exactly once, after all ticks.
package progress
