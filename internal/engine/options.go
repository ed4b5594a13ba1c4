package engine

import (
	"log/slog"
	"time"

	"github.com/atlanticdynamic/hytopia-dev/internal/server/httpserver"
)

// Option configures a DevEngine.
type Option func(*DevEngine)

// WithLogger sets a custom logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *DevEngine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLogHandler sets a custom log handler for the engine. A nil handler is
// ignored.
func WithLogHandler(handler slog.Handler) Option {
	return func(e *DevEngine) {
		if handler != nil {
			e.logger = slog.New(handler)
		}
	}
}

// WithTimeouts sets the HTTP server timeouts.
func WithTimeouts(t httpserver.Timeouts) Option {
	return func(e *DevEngine) {
		e.timeouts = t
	}
}

// WithReadyPollInterval sets how often Init checks for readiness.
func WithReadyPollInterval(d time.Duration) Option {
	return func(e *DevEngine) {
		if d > 0 {
			e.pollInterval = d
		}
	}
}
