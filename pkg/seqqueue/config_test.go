package seqqueue_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/seqqueue/pkg/config"
	"github.com/dmitrymomot/seqqueue/pkg/logger"
	"github.com/dmitrymomot/seqqueue/pkg/seqqueue"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config.ResetCache()

		cfg, err := seqqueue.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, seqqueue.DefaultName, cfg.Name)
		assert.Zero(t, cfg.SlowTaskThreshold)
	})

	t.Run("from environment", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("SEQQUEUE_NAME", "imports")
		t.Setenv("SEQQUEUE_SLOW_TASK_THRESHOLD", "2s")

		cfg, err := seqqueue.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "imports", cfg.Name)
		assert.Equal(t, 2*time.Second, cfg.SlowTaskThreshold)
	})

	t.Run("invalid duration", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("SEQQUEUE_SLOW_TASK_THRESHOLD", "soon")

		_, err := seqqueue.LoadConfig()
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	q := seqqueue.NewFromConfig(seqqueue.Config{Name: "imports"}, seqqueue.WithLogger(logger.Discard()))
	assert.Equal(t, "imports", q.Name())

	overridden := seqqueue.NewFromConfig(
		seqqueue.Config{Name: "imports"},
		seqqueue.WithName("exports"),
	)
	assert.Equal(t, "exports", overridden.Name())

	unnamed := seqqueue.NewFromConfig(seqqueue.Config{})
	assert.Equal(t, seqqueue.DefaultName, unnamed.Name())
}
