package app

import (
	"log/slog"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger   *slog.Logger
	maxLimit int
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithMaxListLimit caps the number of todos a single list request may return
func WithMaxListLimit(limit int) Option {
	return func(cfg *appConfig) {
		if limit > 0 {
			cfg.maxLimit = limit
		}
	}
}
