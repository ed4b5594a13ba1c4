// Package bootstrap constructs the engine from a startup configuration, waits
// for it to finish initializing, and announces that the dev server is up.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/atlanticdynamic/hytopia-dev/internal/config"
	"github.com/atlanticdynamic/hytopia-dev/internal/engine"
)

// ReadyMessage is logged exactly once per successful start.
const ReadyMessage = "Hytopia dev server running on port"

var (
	ErrNoFactory   = errors.New("no engine factory")
	ErrConstruct   = errors.New("failed to construct engine")
	ErrStartFailed = errors.New("failed to start engine")
)

// Start constructs an engine for cfg, waits for Init to finish and logs the
// readiness line. Nothing is logged at info level when it fails; the engine,
// if one was constructed, is stopped before the error is returned.
func Start(
	ctx context.Context,
	cfg config.Config,
	factory engine.Factory,
	logger *slog.Logger,
) (engine.Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if factory == nil {
		return nil, ErrNoFactory
	}

	eng, err := factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConstruct, err)
	}
	if eng == nil {
		return nil, fmt.Errorf("%w: factory returned nil", ErrConstruct)
	}

	logger.Debug("Initializing engine", "port", cfg.Port, "development", cfg.Development)
	if err := eng.Init(ctx); err != nil {
		eng.Stop()
		return nil, fmt.Errorf("%w: %w", ErrStartFailed, err)
	}

	logger.Info(ReadyMessage, "port", cfg.Port)
	return eng, nil
}
