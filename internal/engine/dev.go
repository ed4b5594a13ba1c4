package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/atlanticdynamic/hytopia-dev/internal/catalog"
	"github.com/atlanticdynamic/hytopia-dev/internal/config"
	"github.com/atlanticdynamic/hytopia-dev/internal/server/finitestate"
	"github.com/atlanticdynamic/hytopia-dev/internal/server/httpserver"
	"github.com/gofrs/uuid/v5"
)

const defaultReadyPollInterval = 10 * time.Millisecond

var _ Engine = (*DevEngine)(nil)

// httpRunner is the part of the HTTP server the engine drives.
type httpRunner interface {
	Run(ctx context.Context) error
	Stop()
	GetState() string
	IsReady() bool
}

// DevEngine serves the configured game and example bundles over HTTP.
type DevEngine struct {
	id           uuid.UUID
	cfg          config.Config
	logger       *slog.Logger
	fsm          finitestate.Machine
	server       httpRunner
	timeouts     httpserver.Timeouts
	pollInterval time.Duration

	mu        sync.Mutex
	startedAt time.Time
	runCancel context.CancelFunc
	done      chan struct{}
	runErr    error
}

// New creates a DevEngine for cfg. The HTTP listener is not opened until Init.
func New(cfg config.Config, opts ...Option) (*DevEngine, error) {
	e := &DevEngine{
		id:           uuid.Must(uuid.NewV6()),
		cfg:          cfg,
		logger:       slog.Default().WithGroup("engine"),
		pollInterval: defaultReadyPollInterval,
		done:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}

	machine, err := finitestate.New(e.logger.WithGroup("fsm").Handler())
	if err != nil {
		return nil, fmt.Errorf("failed to create fsm: %w", err)
	}
	e.fsm = machine

	routes, err := e.buildRoutes()
	if err != nil {
		return nil, err
	}
	srv, err := httpserver.New(cfg.Address(), routes, e.timeouts, e.logger.WithGroup("httpserver"))
	if err != nil {
		return nil, err
	}
	e.server = srv
	return e, nil
}

func (e *DevEngine) String() string {
	return fmt.Sprintf("DevEngine[%s]", e.cfg.Address())
}

// ID identifies this engine instance.
func (e *DevEngine) ID() uuid.UUID {
	return e.id
}

// Init starts the HTTP server and waits until it is accepting requests. The
// server keeps running on its own context after Init returns; ctx only bounds
// the wait.
func (e *DevEngine) Init(ctx context.Context) error {
	if err := e.fsm.Transition(finitestate.StatusBooting); err != nil {
		return fmt.Errorf("%w: %w", ErrAlreadyInitialized, err)
	}

	runCtx, cancel := context.WithCancel(context.Background())
	e.mu.Lock()
	e.runCancel = cancel
	e.mu.Unlock()

	go func() {
		err := e.server.Run(runCtx)
		e.mu.Lock()
		e.runErr = err
		e.mu.Unlock()
		close(e.done)
	}()

	ticker := time.NewTicker(e.pollInterval)
	defer ticker.Stop()

	for {
		if e.server.IsReady() {
			e.mu.Lock()
			e.startedAt = time.Now()
			e.mu.Unlock()
			if err := e.fsm.Transition(finitestate.StatusRunning); err != nil {
				e.shutdown()
				e.setStateError()
				return fmt.Errorf("%w: %w", ErrInitFailed, err)
			}
			e.logger.Debug("Engine ready", "id", e.id, "address", e.cfg.Address())
			return nil
		}

		select {
		case <-e.done:
			e.setStateError()
			err := e.Err()
			if err == nil {
				err = fmt.Errorf("server exited before becoming ready")
			}
			return fmt.Errorf("%w: %w", ErrInitFailed, err)
		case <-ctx.Done():
			e.shutdown()
			e.setStateError()
			return fmt.Errorf("%w: %w", ErrInitFailed, ctx.Err())
		case <-ticker.C:
		}
	}
}

// Stop shuts the HTTP server down and waits for it to exit. It is safe to
// call more than once, and before Init.
func (e *DevEngine) Stop() {
	e.mu.Lock()
	started := e.runCancel != nil
	e.mu.Unlock()
	if !started {
		return
	}

	if e.fsm.GetState() == finitestate.StatusRunning {
		if err := e.fsm.Transition(finitestate.StatusStopping); err != nil {
			e.logger.Warn("Failed to transition to stopping", "error", err)
		}
	}
	e.shutdown()

	if e.fsm.GetState() == finitestate.StatusStopping {
		if err := e.fsm.Transition(finitestate.StatusStopped); err != nil {
			e.logger.Warn("Failed to transition to stopped", "error", err)
		}
	}
}

func (e *DevEngine) shutdown() {
	select {
	case <-e.done:
		return
	default:
	}

	e.server.Stop()
	e.mu.Lock()
	cancel := e.runCancel
	e.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	<-e.done
}

func (e *DevEngine) setStateError() {
	if err := e.fsm.SetState(finitestate.StatusError); err != nil {
		e.logger.Error("Failed to set error state", "error", err)
	}
}

func (e *DevEngine) Done() <-chan struct{} {
	return e.done
}

func (e *DevEngine) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.runErr
}

func (e *DevEngine) Config() config.Config {
	return e.cfg
}

func (e *DevEngine) GetState() string {
	return e.fsm.GetState()
}

func (e *DevEngine) IsRunning() bool {
	return e.fsm.GetState() == finitestate.StatusRunning
}

// Status reports what the engine is serving.
func (e *DevEngine) Status() Status {
	s := Status{
		ID:          e.id.String(),
		Port:        e.cfg.Port,
		Development: e.cfg.Development,
		State:       e.GetState(),
		Games:       catalog.Names(e.cfg.Catalog.Games),
		Examples:    catalog.Names(e.cfg.Catalog.Examples),
	}
	e.mu.Lock()
	if !e.startedAt.IsZero() {
		started := e.startedAt
		s.StartedAt = &started
	}
	e.mu.Unlock()
	return s
}
