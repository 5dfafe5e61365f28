package logging

import "go.uber.org/zap"

// New creates the zap logger for the given environment: structured
// production output in production, console-friendly output elsewhere.
// Callers own the logger lifetime, including the final Sync.
func New(environment string) *zap.Logger {
	if environment == "production" {
		logger, _ := zap.NewProduction()
		return logger
	}
	return zap.NewExample()
}
