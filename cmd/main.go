package main

import (
	"context"
	"fmt"
	"time"

	"github.com/isadofschi/forkjoin"
)

func main() {
	n := forkjoin.SetNumThreads(4)
	fmt.Println("team size:", n)

	ctx := context.Background()

	// A region where one worker fails: exactly one signal survives the
	// join, the rest are logged and discarded.
	err := forkjoin.Region(ctx, func(ctx context.Context, tid, team int) error {
		if tid == 2 {
			return fmt.Errorf("worker %d hit a bad row", tid)
		}
		time.Sleep(10 * time.Millisecond)
		return nil
	}, forkjoin.WithName("demo"))
	fmt.Println("region error:", err)

	// A parallel loop over an index range.
	sums := make([]int, 1000)
	err = forkjoin.For(ctx, len(sums), func(ctx context.Context, i int) error {
		sums[i] = i * i
		return nil
	})
	fmt.Println("loop error:", err, "last:", sums[len(sums)-1])
}
