//go:build !singlethread

package forkjoin

import (
	"context"
	"sync"
	"sync/atomic"
)

// Pool keeps a fixed team of worker goroutines warm across many parallel
// regions, amortizing goroutine startup for hot loops that open regions
// repeatedly. A Pool behaves like [Region] and [For] with a pinned team
// size; signal propagation is identical.
type Pool struct {
	tasks   chan func()
	wg      sync.WaitGroup
	workers int
	closed  atomic.Bool

	// Observability counters.
	regions  atomic.Int64
	failed   atomic.Int64
	inFlight atomic.Int64
}

// NewPool creates a pool whose team size is resolved through the
// thread-count policy: the environment override wins, then requested if
// positive, then the process-wide configuration. Workers start
// immediately and idle until a region is opened.
func NewPool(requested int) *Pool {
	n := regionThreads(requested)
	p := &Pool{
		tasks:   make(chan func(), n),
		workers: n,
	}

	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for fn := range p.tasks {
		fn()
	}
}

// Workers returns the pool's team size.
func (p *Pool) Workers() int { return p.workers }

// Stats returns a point-in-time snapshot of pool activity.
// Safe to call concurrently.
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Regions:  p.regions.Load(),
		Failed:   p.failed.Load(),
		InFlight: p.inFlight.Load(),
		Workers:  p.workers,
	}
}

// Region runs fn once per pool worker and blocks until all have joined,
// with the same signal contract as the package-level [Region]. Returns
// [ErrPoolClosed] if the pool has been closed.
func (p *Pool) Region(ctx context.Context, fn RegionFunc, opts ...Option) error {
	cfg := newConfig(opts)
	team := p.workers

	return p.run(team, func(b *Barrier, join *sync.WaitGroup, tid int) func() {
		return func() {
			defer join.Done()
			p.inFlight.Add(1)
			defer p.inFlight.Add(-1)
			runWorker(b, &cfg, tid, func() error {
				return fn(ctx, tid, team)
			})
		}
	})
}

// For runs body for every index in [0, n), splitting the range into
// contiguous chunks across the pool's team, with the same signal contract
// as the package-level [For]. Returns [ErrPoolClosed] if the pool has
// been closed.
func (p *Pool) For(ctx context.Context, n int, body func(ctx context.Context, i int) error, opts ...Option) error {
	if n <= 0 {
		return nil
	}

	cfg := newConfig(opts)
	team := p.workers
	if team > n {
		team = n
	}

	return p.run(team, func(b *Barrier, join *sync.WaitGroup, tid int) func() {
		return func() {
			defer join.Done()
			p.inFlight.Add(1)
			defer p.inFlight.Add(-1)
			begin, end := chunkRange(n, tid, team)
			for i := begin; i < end; i++ {
				runWorker(b, &cfg, tid, func() error {
					return body(ctx, i)
				})
			}
		}
	})
}

// run dispatches team tasks, waits for them to join, and drains the
// barrier on the orchestrating goroutine.
func (p *Pool) run(team int, task func(b *Barrier, join *sync.WaitGroup, tid int) func()) error {
	if p.closed.Load() {
		return ErrPoolClosed
	}
	p.regions.Add(1)

	var b Barrier
	defer b.Close()

	var join sync.WaitGroup
	interrupted := false
	for tid := 0; tid < team; tid++ {
		join.Add(1)
		if !p.dispatch(task(&b, &join, tid)) {
			join.Done()
			interrupted = true
			break
		}
	}
	join.Wait()

	if interrupted {
		// Workers that did run still had their signals captured; surface
		// the close instead only when nothing was raised.
		if err := b.Drain(); err != nil {
			p.failed.Add(1)
			return err
		}
		return ErrPoolClosed
	}

	err := b.Drain()
	if err != nil {
		p.failed.Add(1)
	}
	return err
}

// dispatch sends a task to the worker channel, reporting false if the
// pool was closed concurrently. The recover guards the race between the
// closed check in run and Close closing the channel.
func (p *Pool) dispatch(fn func()) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	p.tasks <- fn
	return true
}

// Close stops accepting new regions and waits for the team to exit.
// Regions already in flight run to completion. Safe to call multiple
// times.
func (p *Pool) Close() {
	if p.closed.CompareAndSwap(false, true) {
		close(p.tasks)
	}
	p.wg.Wait()
}
