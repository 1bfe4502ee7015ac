//go:build singlethread

package forkjoin

import "context"

// Region runs fn inline on the calling goroutine with tid 0 and a team of
// one. Errors return and panics unwind exactly as in ordinary sequential
// code; no interception happens.
func Region(ctx context.Context, fn RegionFunc, opts ...Option) error {
	_ = newConfig(opts)
	return fn(ctx, 0, 1)
}

// For runs body for every index in [0, n) on the calling goroutine. The
// first error stops the loop and is returned directly, matching the
// behavior of a plain sequential loop.
func For(ctx context.Context, n int, body func(ctx context.Context, i int) error, opts ...Option) error {
	_ = newConfig(opts)
	for i := 0; i < n; i++ {
		if err := body(ctx, i); err != nil {
			return err
		}
	}
	return nil
}
