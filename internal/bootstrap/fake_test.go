package bootstrap

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/atlanticdynamic/hytopia-dev/internal/config"
	"github.com/atlanticdynamic/hytopia-dev/internal/engine"
	"github.com/atlanticdynamic/hytopia-dev/internal/server/finitestate"
)

// fakeEngine is a scriptable engine.Engine.
type fakeEngine struct {
	cfg     config.Config
	initErr error

	inits   atomic.Int32
	stops   atomic.Int32
	running atomic.Bool

	doneOnce sync.Once
	done     chan struct{}

	mu  sync.Mutex
	err error
}

func newFakeEngine(cfg config.Config, initErr error) *fakeEngine {
	return &fakeEngine{cfg: cfg, initErr: initErr, done: make(chan struct{})}
}

func (f *fakeEngine) Init(ctx context.Context) error {
	f.inits.Add(1)
	if f.initErr != nil {
		return f.initErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	f.running.Store(true)
	return nil
}

func (f *fakeEngine) Stop() {
	f.stops.Add(1)
	f.running.Store(false)
	f.doneOnce.Do(func() { close(f.done) })
}

// crash simulates the engine exiting on its own.
func (f *fakeEngine) crash(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
	f.running.Store(false)
	f.doneOnce.Do(func() { close(f.done) })
}

func (f *fakeEngine) Done() <-chan struct{} { return f.done }

func (f *fakeEngine) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *fakeEngine) Config() config.Config { return f.cfg }

func (f *fakeEngine) GetState() string {
	if f.running.Load() {
		return finitestate.StatusRunning
	}
	return finitestate.StatusNew
}

func (f *fakeEngine) IsRunning() bool { return f.running.Load() }

// fakeFactory records the config it was called with.
type fakeFactory struct {
	mu     sync.Mutex
	got    []config.Config
	engine *fakeEngine
	err    error
}

func (ff *fakeFactory) build(cfg config.Config) (engine.Engine, error) {
	ff.mu.Lock()
	defer ff.mu.Unlock()
	ff.got = append(ff.got, cfg)
	if ff.err != nil {
		return nil, ff.err
	}
	return ff.engine, nil
}

func (ff *fakeFactory) calls() []config.Config {
	ff.mu.Lock()
	defer ff.mu.Unlock()
	return append([]config.Config(nil), ff.got...)
}
