package seqqueue

import "errors"

var (
	// ErrNilTask is delivered through the handle when a nil task is submitted.
	ErrNilTask = errors.New("seqqueue: nil task submitted")

	// ErrTaskPanicked wraps the value recovered from a panicking task.
	ErrTaskPanicked = errors.New("seqqueue: task panicked")

	// ErrTaskExited is delivered when a task ends its goroutine with runtime.Goexit
	// instead of returning.
	ErrTaskExited = errors.New("seqqueue: task exited without returning")
)
