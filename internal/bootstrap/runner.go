package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/atlanticdynamic/hytopia-dev/internal/config"
	"github.com/atlanticdynamic/hytopia-dev/internal/engine"
	"github.com/atlanticdynamic/hytopia-dev/internal/server/finitestate"
	"github.com/robbyt/go-supervisor/supervisor"
)

var (
	_ supervisor.Runnable  = (*Runner)(nil)
	_ supervisor.Stateable = (*Runner)(nil)
	_ supervisor.Readiness = (*Runner)(nil)
)

// ErrEngineExited is returned from Run when the engine stops on its own.
var ErrEngineExited = errors.New("engine exited unexpectedly")

// Runner runs the bootstrap under go-supervisor. Run starts the engine and
// holds it until the context is canceled or Stop is called.
type Runner struct {
	cfg     config.Config
	factory engine.Factory
	logger  *slog.Logger
	fsm     finitestate.Machine

	mu       sync.Mutex
	engine   engine.Engine
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRunner creates a Runner for cfg. Without WithFactory the bundled
// development engine is used.
func NewRunner(cfg config.Config, opts ...Option) (*Runner, error) {
	r := &Runner{
		cfg:    cfg,
		logger: slog.Default(),
		stopCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.factory == nil {
		r.factory = engine.NewFactory(engine.WithLogger(r.logger.WithGroup("engine")))
	}

	machine, err := finitestate.New(r.logger.WithGroup("fsm").Handler())
	if err != nil {
		return nil, fmt.Errorf("failed to create fsm: %w", err)
	}
	r.fsm = machine
	return r, nil
}

func (r *Runner) String() string {
	return fmt.Sprintf("bootstrap.Runner[port=%d]", r.cfg.Port)
}

// Run starts the engine and blocks until ctx is done, Stop is called, or the
// engine exits on its own.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.fsm.Transition(finitestate.StatusBooting); err != nil {
		return fmt.Errorf("failed to transition to booting: %w", err)
	}

	eng, err := Start(ctx, r.cfg, r.factory, r.logger)
	if err != nil {
		r.setStateError()
		return err
	}
	r.mu.Lock()
	r.engine = eng
	r.mu.Unlock()

	if err := r.fsm.Transition(finitestate.StatusRunning); err != nil {
		eng.Stop()
		r.setStateError()
		return fmt.Errorf("failed to transition to running: %w", err)
	}

	var runErr error
	select {
	case <-ctx.Done():
		r.logger.Debug("Context canceled, stopping engine")
	case <-r.stopCh:
		r.logger.Debug("Stop requested, stopping engine")
	case <-eng.Done():
		runErr = ErrEngineExited
		if err := eng.Err(); err != nil {
			runErr = fmt.Errorf("%w: %w", ErrEngineExited, err)
		}
	}

	if runErr != nil {
		r.logger.Error("Engine exited", "error", runErr)
		eng.Stop()
		r.setStateError()
		return runErr
	}

	if err := r.fsm.Transition(finitestate.StatusStopping); err != nil {
		r.logger.Warn("Failed to transition to stopping", "error", err)
	}
	eng.Stop()
	if err := r.fsm.Transition(finitestate.StatusStopped); err != nil {
		r.logger.Warn("Failed to transition to stopped", "error", err)
	}
	r.logger.Info("Dev server stopped", "port", r.cfg.Port)
	return nil
}

// Stop asks Run to shut the engine down. It does not wait.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
}

func (r *Runner) setStateError() {
	if err := r.fsm.SetState(finitestate.StatusError); err != nil {
		r.logger.Error("Failed to set error state", "error", err)
	}
}

// Engine returns the running engine, or nil before a successful start.
func (r *Runner) Engine() engine.Engine {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.engine
}

func (r *Runner) GetState() string {
	return r.fsm.GetState()
}

// IsReady reports whether the engine has started and the ready line has been
// logged. The supervisor waits on it before finishing startup.
func (r *Runner) IsReady() bool {
	return r.fsm.GetState() == finitestate.StatusRunning
}

func (r *Runner) GetStateChan(ctx context.Context) <-chan string {
	return r.fsm.GetStateChan(ctx)
}
