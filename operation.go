package failover

import "context"

// Operation is a single cancellable unit of asynchronous work that produces
// exactly one value or one error. Implementations must honor context
// cancellation: once ctx is done the operation should stop making progress
// and return promptly, usually with ctx.Err(). An operation that ignores
// cancellation keeps its goroutine alive past the combinator's decision point.
type Operation[T any] func(ctx context.Context) (T, error)
