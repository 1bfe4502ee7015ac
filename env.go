package forkjoin

import (
	"os"
	"strconv"
	"sync"
)

// EnvNumThreads is the environment variable holding the process-wide
// thread-count override. A positive integer value takes precedence over
// every programmatic request; anything else is ignored.
const EnvNumThreads = "LGBM_DEFAULT_NUM_THREADS"

var (
	envOnce     sync.Once
	envOverride int // 0 means absent or malformed
)

// envNumThreads returns the cached environment override, if any.
// The variable is read and parsed at most once per process.
func envNumThreads() (int, bool) {
	envOnce.Do(func() {
		envOverride = parseNumThreads(os.Getenv(EnvNumThreads))
	})
	return envOverride, envOverride > 0
}

// parseNumThreads parses a thread-count string. Returns 0 for anything
// that is not a positive integer.
func parseNumThreads(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
