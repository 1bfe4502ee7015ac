package forkjoin

import "context"

// ForEachSlice runs fn for each item of the slice, splitting the items
// across a parallel region's team.
//
// This is a convenience wrapper around [For].
//
//	err := forkjoin.ForEachSlice(ctx, rows, func(ctx context.Context, r Row) error {
//	    return score(ctx, r)
//	}, forkjoin.WithThreads(8))
func ForEachSlice[T any](ctx context.Context, items []T, fn func(ctx context.Context, item T) error, opts ...Option) error {
	return For(ctx, len(items), func(ctx context.Context, i int) error {
		return fn(ctx, items[i])
	}, opts...)
}

// MapSlice transforms every item in parallel and collects the results in
// input order. On error, MapSlice returns nil and the region's surviving
// signal; partial results are discarded.
//
//	preds, err := forkjoin.MapSlice(ctx, rows, func(ctx context.Context, r Row) (float64, error) {
//	    return model.Predict(ctx, r)
//	})
func MapSlice[T, R any](ctx context.Context, items []T, fn func(ctx context.Context, item T) (R, error), opts ...Option) ([]R, error) {
	results := make([]R, len(items))
	err := For(ctx, len(items), func(ctx context.Context, i int) error {
		r, err := fn(ctx, items[i])
		if err != nil {
			return err
		}
		results[i] = r // safe: each worker writes a unique index
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	return results, nil
}
