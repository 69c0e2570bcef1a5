// Package seqqueue runs asynchronous tasks strictly one at a time, in the
// order they were submitted.
//
// Submit appends a task to the queue backlog and returns an
// *async.Future that settles with exactly the value and error the task
// produced. When the queue is idle, the first submission starts a drain
// goroutine that executes the backlog head, delivers its outcome, removes
// it and moves on; once the backlog is empty the queue goes idle again and
// the next submission restarts it.
//
// # Usage
//
//	q := seqqueue.New(seqqueue.WithName("exports"))
//
//	a := seqqueue.Submit(ctx, q, func(ctx context.Context) (string, error) {
//	    return renderReport(ctx, "daily")
//	})
//	b := seqqueue.Submit(ctx, q, func(ctx context.Context) (int, error) {
//	    return uploadReport(ctx, "daily")
//	})
//
//	report, err := a.Await() // b does not start before a has settled
//
// # Guarantees
//
//   - Tasks are invoked in submission order and never overlap.
//   - A task's handle is settled before the next task is invoked.
//   - Task errors reach only their own handle; later tasks still run.
//     Panics are recovered and reported as errors wrapping ErrTaskPanicked.
//   - Queues share nothing; each one serializes its own submissions.
//
// There is no cancellation, timeout, retry, priority or persistence: the
// context given to Submit is handed to the task and the queue never looks
// at it, so a stalled task stalls everything queued behind it.
// WithSlowTaskThreshold only logs a warning for long running tasks.
//
// # Configuration
//
// LoadConfig reads Config from SEQQUEUE_NAME and SEQQUEUE_SLOW_TASK_THRESHOLD
// (and an optional .env file); NewFromConfig builds a queue from it.
package seqqueue
