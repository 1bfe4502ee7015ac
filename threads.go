//go:build !singlethread

package forkjoin

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

var (
	probeOnce    sync.Once
	probeThreads int

	// activeThreads is the count installed by SetNumThreads; 0 until the
	// first call. Written rarely, read on every region open.
	activeThreads atomic.Int32
)

// SetNumThreads resolves the worker-thread count for subsequent parallel
// regions and installs it as the active configuration. Resolution order:
//
//  1. A positive LGBM_DEFAULT_NUM_THREADS value, ignoring requested.
//  2. requested, if positive.
//  3. The probed system default.
//
// The environment override is read once per process; a malformed or
// non-positive value is treated as absent. SetNumThreads never fails and
// always returns the installed count, which is at least 1.
func SetNumThreads(requested int) int {
	n := resolveNumThreads(requested)
	activeThreads.Store(int32(n))
	return n
}

// MaxThreads returns the team size a region opened now would use:
// the active configured count, or the probed default if SetNumThreads
// has never been called. The environment override, when present, wins.
func MaxThreads() int {
	if env, ok := envNumThreads(); ok {
		return env
	}
	if v := activeThreads.Load(); v > 0 {
		return int(v)
	}
	return probeNumThreads()
}

// NumThreads returns the number of workers in the caller's team. On the
// orchestrating goroutine this is always 1; region workers receive their
// team size as an argument instead.
func NumThreads() int { return 1 }

// ThreadIndex returns the caller's index within its team. On the
// orchestrating goroutine this is always 0; region workers receive their
// index as an argument instead.
func ThreadIndex() int { return 0 }

// resolveNumThreads applies the resolution order for SetNumThreads.
func resolveNumThreads(requested int) int {
	if env, ok := envNumThreads(); ok {
		return env
	}
	if requested > 0 {
		return requested
	}
	return probeNumThreads()
}

// regionThreads returns the team size for a region requesting n workers.
// A per-region request sits between the environment override and the
// process-wide active count.
func regionThreads(requested int) int {
	if env, ok := envNumThreads(); ok {
		return env
	}
	if requested > 0 {
		return requested
	}
	if v := activeThreads.Load(); v > 0 {
		return int(v)
	}
	return probeNumThreads()
}

// probeNumThreads forks a short-lived unconfigured team and reports how
// many workers it ran. The result is cached for the rest of the process.
func probeNumThreads() int {
	probeOnce.Do(func() {
		team := min(runtime.GOMAXPROCS(0), runtime.NumCPU())
		if team < 1 {
			team = 1
		}

		var forked atomic.Int32
		var g errgroup.Group
		for i := 0; i < team; i++ {
			g.Go(func() error {
				forked.Add(1)
				return nil
			})
		}
		_ = g.Wait()

		probeThreads = int(forked.Load())
		if probeThreads < 1 {
			probeThreads = 1
		}
	})
	return probeThreads
}
