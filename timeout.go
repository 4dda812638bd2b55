package failover

import (
	"context"
	"errors"
	"time"
)

// WithTimeout runs op and requires it to complete before d elapses.
//
// If the operation finishes in time, its value and error are returned
// unchanged — including its own failure, which is never masked. If the
// deadline expires first, the operation's context is cancelled, any result it
// may still produce is discarded unobserved, and timeoutErr is returned with
// the zero value. A parent ctx that is cancelled, or whose own deadline
// expires before d, is reported as ctx.Err(), never as timeoutErr; only the
// expiry of this call's deadline substitutes.
//
// A zero duration is legal and expires immediately, so the operation wins only
// if it completes within the same scheduling step. WithTimeout performs no
// retries; compose those around the whole call.
func WithTimeout[T any](ctx context.Context, d time.Duration, timeoutErr error, op Operation[T]) (T, error) {
	parent := ctx

	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	future := Start(ctx, op)

	var (
		value T
		err   error
	)
	select {
	case <-future.Done():
		value, err = future.Await()
	case <-ctx.Done():
		err = ctx.Err()
	}

	// Expiry can be observed on either arm: a cancellation-aware operation
	// returns the derived context's error itself, and the completed future
	// may win the select against the expired context. Both are the same
	// outcome — the deadline ran out — and both substitute. A deadline the
	// parent brought along is the caller's own, so it passes through as is.
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() != nil && parent.Err() == nil {
		var zero T
		return zero, timeoutErr
	}

	return value, err
}
