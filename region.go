//go:build !singlethread

package forkjoin

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Region forks a team of workers, runs fn once per worker, and blocks
// until all workers have joined. Each worker receives its index and the
// team size. The team size follows the thread-count policy: the
// environment override wins, then [WithThreads], then the process-wide
// count installed by [SetNumThreads], then the probed default.
//
// If any worker returns an error or panics, exactly one signal survives
// and is re-raised on the calling goroutine after the join: a panic is
// re-panicked, an error is returned wrapped in a [*WorkerError]. Sibling
// workers are never cancelled; they run to completion regardless.
func Region(ctx context.Context, fn RegionFunc, opts ...Option) error {
	cfg := newConfig(opts)
	team := regionThreads(cfg.threads)

	var b Barrier
	defer b.Close()

	var g errgroup.Group
	for tid := 0; tid < team; tid++ {
		tid := tid
		g.Go(func() error {
			// Signals travel through the barrier, never through the group.
			runWorker(&b, &cfg, tid, func() error {
				return fn(ctx, tid, team)
			})
			return nil
		})
	}
	_ = g.Wait()

	return b.Drain()
}

// For runs body for every index in [0, n), splitting the range into
// contiguous chunks across the team. A failed iteration does not stop the
// worker that owns it: remaining iterations still run, and their signals
// are captured first-wins like any other. For returns nil when n <= 0.
//
// Signal propagation follows [Region]: one surviving signal, re-raised on
// the calling goroutine after the join.
func For(ctx context.Context, n int, body func(ctx context.Context, i int) error, opts ...Option) error {
	if n <= 0 {
		return nil
	}

	cfg := newConfig(opts)
	team := regionThreads(cfg.threads)
	if team > n {
		team = n
	}

	var b Barrier
	defer b.Close()

	var g errgroup.Group
	for tid := 0; tid < team; tid++ {
		tid := tid
		g.Go(func() error {
			begin, end := chunkRange(n, tid, team)
			for i := begin; i < end; i++ {
				runWorker(&b, &cfg, tid, func() error {
					return body(ctx, i)
				})
			}
			return nil
		})
	}
	_ = g.Wait()

	return b.Drain()
}

// runWorker executes one worker body, converting a raised signal into a
// barrier capture. The parallel runtime must never see a panic escape a
// worker goroutine, and every signal is logged before capture so the ones
// discarded by the first-wins policy stay observable.
func runWorker(b *Barrier, cfg *config, tid int, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			pe := newPanicError(r)
			cfg.log().Warn("parallel worker panicked",
				slog.String("region", cfg.name),
				slog.Int("worker", tid),
				slog.Any("value", pe.Value))
			b.Capture(pe)
		}
	}()

	if err := fn(); err != nil {
		cfg.log().Warn("parallel worker failed",
			slog.String("region", cfg.name),
			slog.Int("worker", tid),
			slog.Any("error", err))
		b.Capture(&WorkerError{Worker: tid, Err: err})
	}
}
