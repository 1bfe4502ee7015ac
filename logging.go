package forkjoin

import (
	"log/slog"
	"sync/atomic"
)

// packageLogger holds the logger used for worker-signal reporting when a
// region has no [WithLogger] override. Defaults to slog.Default().
var packageLogger atomic.Pointer[slog.Logger]

// SetLogger replaces the package-level logger used to report worker
// signals. Every worker-raised signal is logged at Warn before capture,
// so failures discarded by the first-wins policy remain observable here.
//
// Panics if l is nil.
func SetLogger(l *slog.Logger) {
	if l == nil {
		panic("forkjoin: SetLogger requires non-nil logger")
	}
	packageLogger.Store(l)
}

func defaultLog() *slog.Logger {
	if l := packageLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}
