//go:build singlethread

package forkjoin

// Single-threaded stand-ins for the thread-count API. Every query reports
// a single thread and configuration requests are accepted but inert, so
// call sites never branch on whether the parallel runtime is present.

// SetNumThreads accepts and ignores a thread-count request. The installed
// count is always 1 in single-threaded builds.
func SetNumThreads(requested int) int { return 1 }

// MaxThreads returns 1.
func MaxThreads() int { return 1 }

// NumThreads returns 1.
func NumThreads() int { return 1 }

// ThreadIndex returns 0.
func ThreadIndex() int { return 0 }
