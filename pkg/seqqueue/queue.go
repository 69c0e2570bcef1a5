package seqqueue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/seqqueue/pkg/async"
	"github.com/dmitrymomot/seqqueue/pkg/logger"
)

// DefaultName is the queue name used when none is configured.
const DefaultName = "default"

// Task is a unit of work executed by the queue.
// It receives the context passed to Submit.
type Task[T any] func(ctx context.Context) (T, error)

// Queue runs submitted tasks one at a time in submission order.
// The zero value is not usable; create queues with New or NewFromConfig.
type Queue struct {
	name              string
	slowTaskThreshold time.Duration
	logger            *slog.Logger

	mu      sync.Mutex
	backlog []*item
	active  bool
	idle    chan struct{} // closed while the queue is idle
}

// item binds a type-erased task invocation to the handle returned by Submit.
type item struct {
	id          uuid.UUID
	ctx         context.Context
	submittedAt time.Time
	exec        func() outcome
	abort       func(err error)
}

// outcome describes how a task settled. The value itself goes straight to the handle.
type outcome struct {
	err       error
	recovered any
}

// New creates an idle queue with an empty backlog.
func New(opts ...Option) *Queue {
	idle := make(chan struct{})
	close(idle)

	q := &Queue{
		name:   DefaultName,
		logger: slog.Default(),
		idle:   idle,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Submit appends task to the queue backlog and returns a handle that settles
// with the task's own result and error once the task has run.
//
// Submit never blocks on other tasks and never fails itself: a task error,
// a panic (wrapped in ErrTaskPanicked), a task ending its goroutine with
// runtime.Goexit (ErrTaskExited) or a nil task (ErrNilTask) is only
// reported through the returned Future. ctx is passed to the task and to
// the queue's log records; the queue does not cancel queued or running tasks.
func Submit[T any](ctx context.Context, q *Queue, task Task[T]) *async.Future[T] {
	if ctx == nil {
		ctx = context.Background()
	}
	future, complete := async.NewPromise[T]()

	it := &item{
		id:          uuid.New(),
		ctx:         ctx,
		submittedAt: time.Now(),
		exec: func() outcome {
			if task == nil {
				var zero T
				complete(zero, ErrNilTask)
				return outcome{err: ErrNilTask}
			}
			res, out := invoke(ctx, task)
			complete(res, out.err)
			return out
		},
		abort: func(err error) {
			var zero T
			complete(zero, err)
		},
	}

	q.enqueue(it)
	return future
}

// invoke runs the task, converting a panic into an error outcome.
func invoke[T any](ctx context.Context, task Task[T]) (res T, out outcome) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			res = zero
			out = outcome{
				err:       fmt.Errorf("%w: %v", ErrTaskPanicked, r),
				recovered: r,
			}
		}
	}()

	res, err := task(ctx)
	return res, outcome{err: err}
}

// enqueue appends the item and starts the drain loop if the queue was idle.
// Append, idle check and activation happen under one lock so concurrent
// submitters can never start two loops.
func (q *Queue) enqueue(it *item) {
	q.mu.Lock()
	q.backlog = append(q.backlog, it)
	pending := len(q.backlog)
	start := !q.active
	if start {
		q.active = true
		q.idle = make(chan struct{})
	}
	q.mu.Unlock()

	q.logger.LogAttrs(it.ctx, slog.LevelDebug, "task queued",
		logger.Queue(q.name),
		logger.TaskID(it.id),
		logger.Pending(pending))

	if start {
		q.logger.LogAttrs(it.ctx, slog.LevelDebug, "queue activated", logger.Queue(q.name))
		go q.drain()
	}
}

// drain executes the head of the backlog until it is empty.
// The backlog is never empty when drain starts.
func (q *Queue) drain() {
	for {
		q.mu.Lock()
		it := q.backlog[0]
		q.mu.Unlock()

		q.run(it)

		if !q.advance() {
			return
		}
	}
}

// run executes it on the current goroutine. If the task ends the goroutine
// with runtime.Goexit, run settles the handle with ErrTaskExited and hands
// the rest of the backlog to a new drain goroutine before this one exits.
func (q *Queue) run(it *item) {
	normalReturn := false
	defer func() {
		if normalReturn {
			return
		}
		it.abort(ErrTaskExited)
		q.logger.LogAttrs(it.ctx, slog.LevelError, "task exited goroutine",
			logger.Queue(q.name),
			logger.TaskID(it.id),
			logger.Error(ErrTaskExited))
		if q.advance() {
			go q.drain()
		}
	}()

	q.execute(it)
	normalReturn = true
}

// advance removes the settled head and reports whether more items are left.
// The emptiness check and the switch to idle share one critical section, so
// a concurrent enqueue either lands before the check and is drained by the
// current loop, or after it and starts a new loop.
func (q *Queue) advance() bool {
	q.mu.Lock()
	q.backlog[0] = nil
	q.backlog = q.backlog[1:]
	if len(q.backlog) > 0 {
		q.mu.Unlock()
		return true
	}
	q.backlog = nil
	q.active = false
	close(q.idle)
	q.mu.Unlock()

	q.logger.Debug("queue idle", logger.Queue(q.name))
	return false
}

func (q *Queue) execute(it *item) {
	start := time.Now()
	q.logger.LogAttrs(it.ctx, slog.LevelDebug, "task started",
		logger.Queue(q.name),
		logger.TaskID(it.id),
		slog.Duration("waited", start.Sub(it.submittedAt)))

	out := it.exec()
	elapsed := time.Since(start)

	switch {
	case out.recovered != nil:
		q.logger.LogAttrs(it.ctx, slog.LevelError, "task panicked",
			logger.Queue(q.name),
			logger.TaskID(it.id),
			logger.Panic(out.recovered),
			logger.Duration(elapsed))
	case out.err != nil:
		// The error belongs to the submitter; it is delivered through the handle.
		q.logger.LogAttrs(it.ctx, slog.LevelDebug, "task failed",
			logger.Queue(q.name),
			logger.TaskID(it.id),
			logger.Error(out.err),
			logger.Duration(elapsed))
	default:
		q.logger.LogAttrs(it.ctx, slog.LevelDebug, "task completed",
			logger.Queue(q.name),
			logger.TaskID(it.id),
			logger.Duration(elapsed))
	}

	if q.slowTaskThreshold > 0 && elapsed > q.slowTaskThreshold {
		q.logger.LogAttrs(it.ctx, slog.LevelWarn, "slow task",
			logger.Queue(q.name),
			logger.TaskID(it.id),
			logger.Duration(elapsed),
			slog.Duration("threshold", q.slowTaskThreshold))
	}
}

// Name returns the queue name.
func (q *Queue) Name() string {
	return q.name
}

// Len returns the number of backlog items, including the one currently running.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.backlog)
}

// Active reports whether a drain loop is currently running.
func (q *Queue) Active() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.active
}

// Wait blocks until the queue is idle or ctx is done.
// Tasks submitted while waiting extend the wait. Returning early on ctx
// does not affect queued or running tasks.
func (q *Queue) Wait(ctx context.Context) error {
	for {
		q.mu.Lock()
		idle := q.idle
		active := q.active
		q.mu.Unlock()

		if !active {
			return nil
		}

		select {
		case <-idle:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
