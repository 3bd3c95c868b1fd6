// Package parallel provides a bounded fan-out executor used to spread
// independent work items across goroutines.
//
// What
//
//   - Pool applies a function to every index in [0, n), running at most
//     Workers() tasks at once.
//   - No ordering guarantee between tasks; all tasks are joined before
//     ForEach returns.
//   - Cancellation via context: once the context is done, no further tasks
//     are launched and ForEach reports the context error.
//
// Why
//
//   - Betweenness centrality fans out one task per source node; a bounded
//     pool keeps the goroutine count proportional to CPUs, not nodes.
//   - The executor is deliberately dumb: work partitioning, accumulation,
//     and reduction belong to the caller.
//
// Usage
//
//	pool, err := parallel.NewPool(0) // 0 → GOMAXPROCS workers
//	if err != nil { ... }
//	err = pool.ForEach(ctx, len(items), func(i int) {
//	    process(items[i])
//	})
//
// Errors
//
//   - ErrBadWorkers         if NewPool receives a negative worker count.
//   - context.Canceled / context.DeadlineExceeded when cancelled mid-run.
package parallel
