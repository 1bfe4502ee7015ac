// Package forkjoin provides fork-join parallel regions with panic-safe
// error propagation and process-wide thread-count configuration.
//
// A parallel region forks a team of worker goroutines, runs them to
// completion, and blocks the calling goroutine at an implicit join barrier.
// Panics and errors raised inside workers cannot cross the join on their
// own; forkjoin intercepts them with a first-wins [Barrier] and re-raises
// exactly one signal on the calling goroutine after all workers have
// finished.
//
// # Running Regions
//
// [Region] forks a team and hands each worker its index and the team size:
//
//	err := forkjoin.Region(ctx, func(ctx context.Context, tid, team int) error {
//	    return process(ctx, tid, team)
//	})
//
// [For] splits a contiguous index range across the team:
//
//	err := forkjoin.For(ctx, len(rows), func(ctx context.Context, i int) error {
//	    return score(ctx, rows[i])
//	})
//
// Use [ForEachSlice] and [MapSlice] for slice-oriented call sites, and
// [Pool] to keep a worker team warm across many regions.
//
// # Signal Propagation
//
// If a worker returns an error, it is wrapped in a [*WorkerError] and
// captured. If a worker panics, the panic is wrapped in a [*PanicError]
// (value plus stack) and captured. Only the first signal survives; later
// ones are logged at Warn and discarded. After the join, a captured panic
// is re-panicked on the calling goroutine and a captured error is returned.
// Sibling workers always run to completion: a failure in one worker does
// not cancel the others.
//
// # Thread Count
//
// [SetNumThreads] resolves and installs the team size for subsequent
// regions. The environment variable LGBM_DEFAULT_NUM_THREADS, when set to
// a positive integer, overrides every programmatic request for the life of
// the process. Otherwise a positive requested value wins, and failing
// that, a probed system default is used.
//
// # Single-Threaded Builds
//
// Building with -tags singlethread replaces the parallel runtime with a
// sequential shim: every thread query reports a single thread, regions run
// inline on the calling goroutine, and [Barrier] becomes a no-op because
// signals already propagate through the ordinary call stack. The API is
// identical in both builds, so call sites never branch on availability.
package forkjoin
