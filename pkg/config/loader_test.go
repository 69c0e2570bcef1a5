package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/seqqueue/pkg/config"
)

type drainConfig struct {
	Name    string        `env:"TEST_DRAIN_NAME" envDefault:"default"`
	Limit   int           `env:"TEST_DRAIN_LIMIT" envDefault:"1"`
	Timeout time.Duration `env:"TEST_DRAIN_TIMEOUT" envDefault:"1s"`
}

type requiredConfig struct {
	Required string `env:"TEST_REQUIRED_VALUE,required"`
}

type fileConfig struct {
	Value string `env:"TEST_FILE_VALUE"`
	Kept  string `env:"TEST_FILE_KEPT"`
}

func TestLoad(t *testing.T) {
	t.Run("parses values", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_DRAIN_NAME", "imports")
		t.Setenv("TEST_DRAIN_LIMIT", "3")
		t.Setenv("TEST_DRAIN_TIMEOUT", "250ms")

		var cfg drainConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "imports", cfg.Name)
		assert.Equal(t, 3, cfg.Limit)
		assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	})

	t.Run("uses defaults", func(t *testing.T) {
		config.ResetCache()

		var cfg drainConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "default", cfg.Name)
		assert.Equal(t, 1, cfg.Limit)
		assert.Equal(t, time.Second, cfg.Timeout)
	})

	t.Run("caches per type", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_DRAIN_NAME", "first")

		var first drainConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("TEST_DRAIN_NAME", "second")
		var second drainConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.Name)

		config.ResetCache()
		var third drainConfig
		require.NoError(t, config.Load(&third))
		assert.Equal(t, "second", third.Name)
	})

	t.Run("missing required value", func(t *testing.T) {
		config.ResetCache()

		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *drainConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("must load panics", func(t *testing.T) {
		config.ResetCache()
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env.test")
	require.NoError(t, os.WriteFile(path, []byte("TEST_FILE_VALUE=from_file\nTEST_FILE_KEPT=from_file\n"), 0o600))

	t.Setenv("TEST_FILE_KEPT", "from_env")
	// registered with t.Setenv so the value loaded from the file is cleaned up
	t.Setenv("TEST_FILE_VALUE", "")
	require.NoError(t, os.Unsetenv("TEST_FILE_VALUE"))

	require.NoError(t, config.LoadEnv(path))
	config.ResetCache()

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.Value)
	assert.Equal(t, "from_env", cfg.Kept)
}

func TestLoadEnvMissingFile(t *testing.T) {
	err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)

	assert.Panics(t, func() {
		config.MustLoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	})
}
