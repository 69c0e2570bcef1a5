// Package logger builds *slog.Logger instances with a small set of functional
// options and provides attribute helpers that keep key names consistent.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the configured
// Format and wraps it in LogHandlerDecorator, which runs registered
// ContextExtractor callbacks on every record so values stored in a
// context.Context (for example a job or caller id) show up in the output.
//
// # Usage
//
//	import "github.com/dmitrymomot/seqqueue/pkg/logger"
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "importer"),
//	    logger.WithContextValue("caller", callerKey{}),
//	)
//	logger.SetAsDefault(log)
//
//	log.Info("task completed",
//	    logger.Queue("imports"),
//	    logger.TaskID(id),
//	    logger.Duration(elapsed),
//	)
//
// # Configuration
//
//   - WithDevelopment / WithStaging / WithProduction / WithEnvironment: presets per environment.
//   - WithFormat: text or json; panics on anything else.
//   - WithLevel, WithOutput, WithAttr.
//   - WithContextExtractors / WithContextValue: inject attributes from context.
//   - WithContextEnvironment: log the environment carried by the context.
//
// Discard returns a logger that drops everything, handy in tests and benchmarks.
//
// # Attributes
//
// Error, Errors, TaskID and Panic return an empty slog.Attr for nil input, so
//
//	log.Info("task finished", logger.Error(err))
//
// needs no nil check.
package logger
