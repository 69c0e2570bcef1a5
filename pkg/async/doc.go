// Package async provides a generic Future and helpers for waiting on
// asynchronous computations.
//
// A Future is obtained either from Async, which runs a function in its own
// goroutine, or from NewPromise, which returns a pending Future together with
// the CompleteFunc that settles it. The second form is for callers that decide
// themselves when the work runs, such as a queue draining a backlog. The value
// and error passed to a CompleteFunc reach Await unchanged; only the first call
// counts.
//
//	future := async.Async(ctx, 42, func(_ context.Context, v int) (string, error) {
//	    return fmt.Sprintf("value is %d", v), nil
//	})
//	res, err := future.Await()
//
// Waiting can be bounded with AwaitWithTimeout (ErrTimeout) or AwaitContext
// (the context error); neither affects the computation. IsComplete polls and
// Done exposes the completion channel for select statements.
//
// WaitAll collects results in order and stops at the first error; WaitAny
// returns the first Future to settle (ErrNoFutures for an empty list).
package async
