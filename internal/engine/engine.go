// Package engine defines the runtime the bootstrap starts, and ships the
// bundled development engine.
//
// The bootstrap only depends on the Engine interface: construct it with a
// Config, call Init, and wait for it to report ready. Everything an engine
// does after that is its own business.
package engine

import (
	"context"
	"errors"

	"github.com/atlanticdynamic/hytopia-dev/internal/config"
)

var (
	// ErrInitFailed wraps every failure returned from Init.
	ErrInitFailed = errors.New("engine initialization failed")

	// ErrAlreadyInitialized is returned when Init is called more than once.
	ErrAlreadyInitialized = errors.New("engine already initialized")
)

// Engine is the runtime collaborator started by the bootstrap.
type Engine interface {
	// Init starts the engine and blocks until it is ready to serve, it
	// fails, or ctx is done. The engine keeps running after Init returns.
	Init(ctx context.Context) error

	// Stop shuts the engine down and waits for it to exit.
	Stop()

	// Done is closed once the engine has exited, for any reason.
	Done() <-chan struct{}

	// Err reports why the engine exited, or nil for a clean stop.
	Err() error

	// Config returns the configuration the engine was constructed with.
	Config() config.Config

	GetState() string
	IsRunning() bool
}

// Factory constructs an engine from a startup configuration.
type Factory func(cfg config.Config) (Engine, error)

// NewFactory returns a Factory producing DevEngines with opts applied.
func NewFactory(opts ...Option) Factory {
	return func(cfg config.Config) (Engine, error) {
		e, err := New(cfg, opts...)
		if err != nil {
			return nil, err
		}
		return e, nil
	}
}
