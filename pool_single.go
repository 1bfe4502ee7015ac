//go:build singlethread

package forkjoin

import (
	"context"
	"sync/atomic"
)

// Pool is a degenerate single-worker pool in single-threaded builds.
// Regions run inline on the calling goroutine; the type exists so call
// sites written against the parallel API compile unchanged.
type Pool struct {
	closed  atomic.Bool
	regions atomic.Int64
	failed  atomic.Int64
}

// NewPool accepts and ignores a thread-count request; the team size is
// always 1 in single-threaded builds.
func NewPool(requested int) *Pool { return &Pool{} }

// Workers returns 1.
func (p *Pool) Workers() int { return 1 }

// Stats returns a point-in-time snapshot of pool activity.
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Regions: p.regions.Load(),
		Failed:  p.failed.Load(),
		Workers: 1,
	}
}

// Region runs fn inline with tid 0 and a team of one. Returns
// [ErrPoolClosed] if the pool has been closed.
func (p *Pool) Region(ctx context.Context, fn RegionFunc, opts ...Option) error {
	if p.closed.Load() {
		return ErrPoolClosed
	}
	_ = newConfig(opts)
	p.regions.Add(1)

	err := fn(ctx, 0, 1)
	if err != nil {
		p.failed.Add(1)
	}
	return err
}

// For runs body for every index in [0, n) inline, stopping at the first
// error. Returns [ErrPoolClosed] if the pool has been closed.
func (p *Pool) For(ctx context.Context, n int, body func(ctx context.Context, i int) error, opts ...Option) error {
	if p.closed.Load() {
		return ErrPoolClosed
	}
	_ = newConfig(opts)
	if n <= 0 {
		return nil
	}
	p.regions.Add(1)

	for i := 0; i < n; i++ {
		if err := body(ctx, i); err != nil {
			p.failed.Add(1)
			return err
		}
	}
	return nil
}

// Close stops accepting new regions. Safe to call multiple times.
func (p *Pool) Close() {
	p.closed.Store(true)
}
