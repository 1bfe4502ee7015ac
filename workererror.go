package forkjoin

import (
	"errors"
	"fmt"
)

// WorkerError wraps an error together with the index of the worker that
// produced it. Regions wrap every worker failure in a WorkerError so
// callers can attribute the surviving signal to a specific worker.
type WorkerError struct {
	Worker int
	Err    error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("worker %d failed: %v", e.Worker, e.Err)
}

func (e *WorkerError) Unwrap() error {
	return e.Err
}

// IsWorkerError reports whether err (or any error in its chain) is a
// [*WorkerError].
func IsWorkerError(err error) bool {
	if err == nil {
		return false
	}
	var we *WorkerError
	return errors.As(err, &we)
}

// WorkerOf extracts the worker index from the first [*WorkerError] in
// err's chain. Returns false if no WorkerError is found.
func WorkerOf(err error) (int, bool) {
	if err == nil {
		return 0, false
	}

	var we *WorkerError
	if errors.As(err, &we) {
		return we.Worker, true
	}
	return 0, false
}

// CauseOf unwraps the first [*WorkerError] in err's chain and returns its
// underlying cause. If err is not a WorkerError, it is returned as-is.
// Returns nil if err is nil.
func CauseOf(err error) error {
	if err == nil {
		return nil
	}

	var we *WorkerError
	if errors.As(err, &we) {
		return we.Err
	}

	return err
}
