//go:build !singlethread

package forkjoin_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/isadofschi/forkjoin"
)

func ExampleFor() {
	squares := make([]int, 6)
	err := forkjoin.For(context.Background(), len(squares), func(ctx context.Context, i int) error {
		squares[i] = i * i
		return nil
	}, forkjoin.WithThreads(3))
	if err != nil {
		fmt.Println("error:", err)
	}
	fmt.Println(squares)
	// Output: [0 1 4 9 16 25]
}

func ExampleRegion() {
	err := forkjoin.Region(context.Background(), func(ctx context.Context, tid, team int) error {
		if tid == 2 {
			return errors.New("bad row")
		}
		return nil
	}, forkjoin.WithThreads(4))
	fmt.Println(err)
	// Output: worker 2 failed: bad row
}

func ExampleMapSlice() {
	doubled, err := forkjoin.MapSlice(context.Background(), []int{1, 2, 3}, func(ctx context.Context, n int) (int, error) {
		return n * 2, nil
	}, forkjoin.WithThreads(2))
	if err != nil {
		fmt.Println("error:", err)
	}
	fmt.Println(doubled)
	// Output: [2 4 6]
}
