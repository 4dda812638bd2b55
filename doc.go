// Package failover provides generic combinators for hardening outbound calls:
// a bounded-time wrapper that turns a stalled operation into a caller-supplied
// timeout error, and a first-success race across redundant attempts of the
// same logical operation.
//
// The package is centred around the Operation type — a single cancellable unit
// of asynchronous work yielding one value or one error — and two combinators
// built on it. WithTimeout bounds one operation with a deadline. FirstSuccess
// races several operations, returns as soon as any one succeeds, and cancels
// the rest. Start turns an Operation into a Future for callers that want an
// explicit handle with Await, AwaitWithTimeout, Done, and Cancel.
//
// The package implements no networking, retries, or connection management of
// its own; callers supply the computations and compose the combinators around
// them.
//
// # Usage
//
//	import (
//	    "context"
//	    "time"
//
//	    "github.com/dmitrymomot/failover"
//	)
//
//	var errUnreachable = errors.New("service unreachable")
//
//	func fetchConfig(ctx context.Context) (Config, error) {
//	    // Bound a single call at 2 seconds.
//	    return failover.WithTimeout(ctx, 2*time.Second, errUnreachable, queryPrimary)
//	}
//
//	func fetchFromAnyMirror(ctx context.Context, mirrors []string) (Config, bool) {
//	    ops := make([]failover.Operation[Config], len(mirrors))
//	    for i, addr := range mirrors {
//	        ops[i] = func(ctx context.Context) (Config, error) {
//	            return queryMirror(ctx, addr)
//	        }
//	    }
//	    // First mirror to answer wins; the rest are cancelled.
//	    return failover.FirstSuccess(ctx, ops...)
//	}
//
// A deadline for the whole race is composed, not built in:
//
//	cfg, err := failover.WithTimeout(ctx, 5*time.Second, errUnreachable,
//	    func(ctx context.Context) (Config, error) {
//	        cfg, ok := failover.FirstSuccess(ctx, ops...)
//	        if !ok {
//	            return Config{}, errUnreachable
//	        }
//	        return cfg, nil
//	    })
//
// # Error Handling
//
// WithTimeout never masks an operation's own error: the substituted timeoutErr
// appears only on deadline expiry, and cancellation of the parent context is
// reported as ctx.Err(). FirstSuccess discards individual failures by design
// and reports "none succeeded" as a false second return value rather than an
// error; operations that need per-attempt diagnostics should record their own
// failures before returning.
//
// # Cancellation
//
// Cancellation is cooperative and flows through context. Operations must
// return promptly once their context is done; the combinators guarantee that a
// result produced after the decision point is never observed by the caller,
// but they cannot stop an operation that ignores its context.
package failover
