package seqqueue

import (
	"time"

	"github.com/dmitrymomot/seqqueue/pkg/config"
)

// Config holds environment driven settings for a Queue.
type Config struct {
	Name              string        `env:"SEQQUEUE_NAME" envDefault:"default"`
	SlowTaskThreshold time.Duration `env:"SEQQUEUE_SLOW_TASK_THRESHOLD" envDefault:"0s"`
}

// LoadConfig reads Config from the environment (and the default .env file).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig creates a queue from cfg. Options are applied after cfg,
// so they take precedence.
func NewFromConfig(cfg Config, opts ...Option) *Queue {
	base := []Option{
		WithName(cfg.Name),
		WithSlowTaskThreshold(cfg.SlowTaskThreshold),
	}
	return New(append(base, opts...)...)
}
