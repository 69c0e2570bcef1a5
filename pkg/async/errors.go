package async

import "errors"

var (
	// ErrTimeout is returned by AwaitWithTimeout when the Future is not settled in time.
	ErrTimeout = errors.New("async: operation timed out waiting for future completion")

	// ErrNoFutures is returned by WaitAny when it is called without futures.
	ErrNoFutures = errors.New("async: WaitAny called with empty futures slice")
)
