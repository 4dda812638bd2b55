package failover

import (
	"context"
	"time"
)

// Future is the handle to an Operation started with Start. It completes
// exactly once; all methods are safe for concurrent use.
type Future[T any] struct {
	value  T
	err    error
	done   chan struct{}
	cancel context.CancelFunc
}

// Start runs op in its own goroutine and immediately returns a Future for its
// result. The operation receives a context derived from ctx that is also
// cancelled by Future.Cancel. If ctx is already cancelled the future completes
// with ctx.Err() without invoking op.
func Start[T any](ctx context.Context, op Operation[T]) *Future[T] {
	ctx, cancel := context.WithCancel(ctx)
	f := &Future[T]{done: make(chan struct{}), cancel: cancel}

	go func() {
		defer close(f.done)
		defer cancel()

		// Early exit prevents starting work under a pre-cancelled context.
		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.value, f.err = op(ctx)
	}()

	return f
}

// Await blocks until the operation completes and returns its result.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.value, f.err
}

// AwaitWithTimeout waits for the operation to complete for at most d. On
// expiry it returns ErrTimeout; the operation itself keeps running and its
// result remains available to a later Await. Use WithTimeout instead to also
// cancel the operation when the deadline passes.
func (f *Future[T]) AwaitWithTimeout(d time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-time.After(d):
		var zero T
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the operation has completed, without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Done returns a channel that is closed when the operation completes, for use
// in select statements.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Cancel requests cooperative cancellation of the underlying operation. The
// future still completes, with whatever the operation returns once it observes
// the cancellation. Cancel may be called multiple times and after completion.
func (f *Future[T]) Cancel() {
	f.cancel()
}

// WaitAll waits for every future to complete and returns their results in
// argument order, together with the first error any of them produced.
func WaitAll[T any](futures ...*Future[T]) ([]T, error) {
	results := make([]T, len(futures))

	var firstErr error
	for i, future := range futures {
		result, err := future.Await()
		results[i] = result
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return results, firstErr
}
