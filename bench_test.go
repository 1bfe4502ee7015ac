//go:build !singlethread

package forkjoin_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/isadofschi/forkjoin"
)

// BenchmarkForNoWork measures region open/join overhead for empty bodies,
// compared to raw goroutines + WaitGroup.
func BenchmarkForNoWork(b *testing.B) {
	for _, n := range []int{1, 100, 10000} {
		b.Run(iterCountName(n), func(b *testing.B) {
			b.ReportAllocs()
			ctx := context.Background()
			for i := 0; i < b.N; i++ {
				_ = forkjoin.For(ctx, n, func(ctx context.Context, _ int) error {
					return nil
				}, forkjoin.WithThreads(4))
			}
		})
	}
}

func BenchmarkPoolForNoWork(b *testing.B) {
	p := forkjoin.NewPool(4)
	defer p.Close()

	for _, n := range []int{1, 100, 10000} {
		b.Run(iterCountName(n), func(b *testing.B) {
			b.ReportAllocs()
			ctx := context.Background()
			for i := 0; i < b.N; i++ {
				_ = p.For(ctx, n, func(ctx context.Context, _ int) error {
					return nil
				})
			}
		})
	}
}

func BenchmarkRawGoroutines(b *testing.B) {
	const team = 4
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var wg sync.WaitGroup
		wg.Add(team)
		for j := 0; j < team; j++ {
			go func() {
				defer wg.Done()
			}()
		}
		wg.Wait()
	}
}

func iterCountName(n int) string {
	return fmt.Sprintf("iters-%d", n)
}
