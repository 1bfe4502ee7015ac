//go:build !singlethread

package forkjoin

import (
	"errors"
	"sync"
	"sync/atomic"
)

// Barrier is a single-slot container for the first signal raised inside a
// parallel region. Workers call [Barrier.Capture] from inside the region;
// the orchestrating goroutine calls [Barrier.Drain] after the join to
// re-raise the captured signal, if any.
//
// A Barrier is scoped to exactly one region invocation. The zero value is
// ready to use. Capture is safe for concurrent use by multiple workers;
// Drain and Close must only be called after all workers have joined.
type Barrier struct {
	captured atomic.Bool

	mu      sync.Mutex
	signal  error
	drained bool
}

// Capture stores sig as the region's surviving signal if no signal has
// been captured yet. Later calls are no-ops: only the first signal can be
// meaningfully re-raised after the join, so the rest are discarded.
// Callers are expected to log each signal before capturing it, so the
// discarded ones remain observable. A nil sig is ignored.
func (b *Barrier) Capture(sig error) {
	if sig == nil {
		return
	}
	// Cheap pre-check: once a signal is in, every later Capture is a no-op.
	if b.captured.Load() {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.signal != nil || b.drained {
		return
	}
	b.signal = sig
	b.captured.Store(true)
}

// Drain re-raises the captured signal on the calling goroutine and marks
// the barrier drained. A captured [*PanicError] is re-panicked; any other
// error is returned. If nothing was captured, Drain returns nil.
//
// Drain must happen after the region's join: it must not run concurrently
// with Capture.
func (b *Barrier) Drain() error {
	b.mu.Lock()
	sig := b.signal
	b.signal = nil
	b.drained = true
	b.mu.Unlock()

	return reraise(sig)
}

// Close re-raises a captured signal that was never drained, so a region
// that skips Drain cannot swallow a worker failure silently. It is
// intended for defer at region entry. Closing an empty or drained barrier
// does nothing.
func (b *Barrier) Close() {
	b.mu.Lock()
	sig := b.signal
	done := b.drained
	b.drained = true
	b.mu.Unlock()

	if done || sig == nil {
		return
	}
	if err := reraise(sig); err != nil {
		// Nobody is left to receive the error; losing it silently is
		// worse than crashing.
		panic(err)
	}
}

// reraise re-panics panic-carrying signals and passes the rest through.
func reraise(sig error) error {
	if sig == nil {
		return nil
	}
	var pe *PanicError
	if errors.As(sig, &pe) {
		panic(pe)
	}
	return sig
}
