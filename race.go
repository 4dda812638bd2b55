package failover

import (
	"context"
	"sync"
)

// FirstSuccess races ops against each other and returns the value of the
// earliest one to succeed, reported as (value, true). The remaining operations
// are cancelled as soon as a winner is decided; FirstSuccess never waits for
// them to finish.
//
// Individual failures are discarded silently — not logged, not aggregated.
// Callers that need per-attempt diagnostics should have each Operation record
// its own failure before returning. If ops is empty, or every operation fails,
// FirstSuccess returns (zero, false); the all-failed outcome is observed only
// after the last operation has finished.
//
// FirstSuccess applies no deadline of its own. Bound the whole race, or each
// individual attempt, with WithTimeout.
func FirstSuccess[T any](ctx context.Context, ops ...Operation[T]) (T, bool) {
	var zero T
	if len(ops) == 0 {
		return zero, false
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Single slot: the first success parks its value here; later successes
	// fall through the non-blocking send and are discarded.
	won := make(chan T, 1)

	var wg sync.WaitGroup
	wg.Add(len(ops))
	for _, op := range ops {
		go func() {
			defer wg.Done()

			value, err := op(ctx)
			if err != nil {
				return
			}

			select {
			case won <- value:
				// Winner: stop the remaining operations without waiting
				// for them.
				cancel()
			default:
			}
		}()
	}

	exhausted := make(chan struct{})
	go func() {
		wg.Wait()
		close(exhausted)
	}()

	select {
	case value := <-won:
		return value, true
	case <-exhausted:
		// A success that raced the final failure has already landed in the
		// slot by now: every send happens before that sender's Done.
		select {
		case value := <-won:
			return value, true
		default:
			return zero, false
		}
	}
}
