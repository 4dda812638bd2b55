package failover

import "errors"

var (
	// ErrTimeout is returned by Future.AwaitWithTimeout when the wait expires
	// before the operation completes. WithTimeout never returns it; there the
	// caller supplies its own timeout error.
	ErrTimeout = errors.New("failover: timed out waiting for operation to complete")
)
