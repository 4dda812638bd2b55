package failover_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrymomot/failover"
)

// BenchmarkStartAwait measures the per-future overhead with a trivial operation.
func BenchmarkStartAwait(b *testing.B) {
	ctx := context.Background()

	for b.Loop() {
		future := failover.Start(ctx, func(ctx context.Context) (int, error) {
			return 1, nil
		})
		if _, err := future.Await(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkWithTimeout measures combinator overhead when the operation
// completes well within the deadline.
func BenchmarkWithTimeout(b *testing.B) {
	ctx := context.Background()
	timeoutErr := errors.New("expired")

	for b.Loop() {
		_, err := failover.WithTimeout(ctx, time.Minute, timeoutErr, func(ctx context.Context) (int, error) {
			return 1, nil
		})
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFirstSuccess measures race overhead across eight attempts where one
// succeeds immediately and the rest wait for cancellation.
func BenchmarkFirstSuccess(b *testing.B) {
	ctx := context.Background()

	ops := make([]failover.Operation[int], 8)
	ops[0] = func(ctx context.Context) (int, error) { return 1, nil }
	for i := 1; i < len(ops); i++ {
		ops[i] = func(ctx context.Context) (int, error) {
			<-ctx.Done()
			return 0, ctx.Err()
		}
	}

	for b.Loop() {
		if _, ok := failover.FirstSuccess(ctx, ops...); !ok {
			b.Fatal("expected a success")
		}
	}
}
