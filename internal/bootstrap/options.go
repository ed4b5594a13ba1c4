package bootstrap

import (
	"log/slog"

	"github.com/atlanticdynamic/hytopia-dev/internal/engine"
)

// Option configures a Runner.
type Option func(*Runner)

// WithLogHandler sets a custom slog handler for the Runner.
func WithLogHandler(handler slog.Handler) Option {
	return func(r *Runner) {
		if handler != nil {
			r.logger = slog.New(handler)
		}
	}
}

// WithLogger sets a logger for the Runner.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithFactory replaces the engine factory.
func WithFactory(f engine.Factory) Option {
	return func(r *Runner) {
		if f != nil {
			r.factory = f
		}
	}
}
