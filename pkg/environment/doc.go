// Package environment defines the application environment names shared by
// the logger presets, and carries the current environment through
// context.Context.
//
// Parse accepts the full names ("development", "staging", "production") and
// the short aliases ("dev", "stage", "prod"), falling back to Development:
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	if env == environment.Production {
//	    // production-specific behaviour
//	}
//
// WithContext and FromContext store and read the environment on a context;
// LoggerExtractor turns it into an "env" log attribute (see
// logger.WithContextEnvironment).
package environment
