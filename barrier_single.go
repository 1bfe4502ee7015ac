//go:build singlethread

package forkjoin

// Barrier is a no-op in single-threaded builds. Only one goroutine ever
// executes a region body, so a raised signal already propagates through
// the ordinary call stack and nothing needs interception. The type exists
// so call sites written against the parallel API compile unchanged.
type Barrier struct{}

// Capture does nothing: there is no thread boundary to carry sig across.
func (b *Barrier) Capture(sig error) {}

// Drain does nothing and reports no signal.
func (b *Barrier) Drain() error { return nil }

// Close does nothing.
func (b *Barrier) Close() {}
