package forkjoin

import (
	"context"
	"errors"
)

// RegionFunc is the body of a parallel region. It runs once per worker,
// receiving the worker's index (0-based) and the team size. The same
// signature is used in single-threaded builds, where tid is always 0 and
// team is always 1.
type RegionFunc func(ctx context.Context, tid, team int) error

// ErrPoolClosed is returned when a region is opened on a closed [Pool].
var ErrPoolClosed = errors.New("forkjoin: pool is closed")

// PoolStats provides a point-in-time snapshot of pool activity.
type PoolStats struct {
	Regions  int64 // regions executed
	Failed   int64 // regions that surfaced a worker error
	InFlight int64 // workers currently executing a body
	Workers  int   // team size (fixed at creation)
}

// chunkRange returns the half-open index range [begin, end) that worker
// tid owns when n iterations are split across a team. Ranges are
// contiguous and cover every index exactly once.
func chunkRange(n, tid, team int) (begin, end int) {
	begin = n * tid / team
	end = n * (tid + 1) / team
	return begin, end
}
