// Package config loads application configuration from environment variables
// into typed structs.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct tag parsing:
//
//	type QueueConfig struct {
//	    Name              string        `env:"SEQQUEUE_NAME" envDefault:"default"`
//	    SlowTaskThreshold time.Duration `env:"SEQQUEUE_SLOW_TASK_THRESHOLD" envDefault:"0s"`
//	}
//
//	if err := config.LoadEnv("./config/.env"); err != nil {
//	    log.Fatal(err)
//	}
//
//	var cfg QueueConfig
//	config.MustLoad(&cfg)
//
// Each struct type is parsed once per process and cached by type; use
// ResetCache in tests after changing the environment.
//
// Errors: ErrParsingConfig, ErrLoadingEnvFile and ErrNilPointer, all usable
// with errors.Is.
package config
