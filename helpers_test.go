//go:build !singlethread

package forkjoin_test

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isadofschi/forkjoin"
)

func TestForEachSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	var sum atomic.Int64
	err := forkjoin.ForEachSlice(context.Background(), items, func(ctx context.Context, item int) error {
		sum.Add(int64(item))
		return nil
	}, forkjoin.WithThreads(3))
	require.NoError(t, err)
	assert.Equal(t, int64(15), sum.Load())
}

func TestForEachSliceEmpty(t *testing.T) {
	var called atomic.Bool
	err := forkjoin.ForEachSlice(context.Background(), []int(nil), func(ctx context.Context, item int) error {
		called.Store(true)
		return nil
	})
	require.NoError(t, err)
	assert.False(t, called.Load(), "body must not run for an empty slice")
}

func TestMapSlicePreservesOrder(t *testing.T) {
	items := make([]int, 200)
	for i := range items {
		items[i] = i
	}

	out, err := forkjoin.MapSlice(context.Background(), items, func(ctx context.Context, item int) (string, error) {
		return strconv.Itoa(item * 2), nil
	}, forkjoin.WithThreads(4))
	require.NoError(t, err)
	require.Len(t, out, len(items))

	for i, s := range out {
		assert.Equal(t, strconv.Itoa(i*2), s, "index %d", i)
	}
}

func TestMapSliceError(t *testing.T) {
	boom := errors.New("boom")

	out, err := forkjoin.MapSlice(context.Background(), []int{1, 2, 3}, func(ctx context.Context, item int) (int, error) {
		if item == 2 {
			return 0, boom
		}
		return item, nil
	}, forkjoin.WithThreads(3))

	require.ErrorIs(t, err, boom)
	assert.Nil(t, out, "partial results must be discarded on error")
}
