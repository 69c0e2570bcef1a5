package seqqueue

import (
	"log/slog"
	"time"
)

// Option configures a Queue.
type Option func(*Queue)

// WithName sets the queue name attached to every log record.
// Empty names are ignored.
func WithName(name string) Option {
	return func(q *Queue) {
		if name != "" {
			q.name = name
		}
	}
}

// WithLogger sets the logger used for queue lifecycle records.
func WithLogger(logger *slog.Logger) Option {
	return func(q *Queue) {
		if logger != nil {
			q.logger = logger
		}
	}
}

// WithSlowTaskThreshold logs a warning for tasks running longer than d.
// The task itself is never interrupted. Zero or negative disables the check.
func WithSlowTaskThreshold(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.slowTaskThreshold = d
		}
	}
}
