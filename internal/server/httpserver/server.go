// Package httpserver wraps go-supervisor's HTTP runnable for the dev engine.
package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/atlanticdynamic/hytopia-dev/internal/server/finitestate"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/robbyt/go-supervisor/supervisor"
)

var (
	_ supervisor.Runnable  = (*HTTPServer)(nil)
	_ supervisor.Stateable = (*HTTPServer)(nil)
	_ supervisor.Readiness = (*HTTPServer)(nil)
)

// Timeouts configures the underlying http.Server. Zero values keep the
// go-supervisor defaults.
type Timeouts struct {
	Read  time.Duration
	Write time.Duration
	Idle  time.Duration
	Drain time.Duration
}

// serverImplementation abstracts the go-supervisor runner for tests.
type serverImplementation interface {
	Run(ctx context.Context) error
	Stop()
	GetState() string
	IsReady() bool
	GetStateChan(ctx context.Context) <-chan string
}

// HTTPServer serves a fixed route set on one address.
type HTTPServer struct {
	address  string
	routes   []httpserver.Route
	timeouts Timeouts
	server   serverImplementation
	logger   *slog.Logger
}

// New creates an HTTP server for address with routes. A nil logger uses slog.Default.
func New(
	address string,
	routes []httpserver.Route,
	timeouts Timeouts,
	logger *slog.Logger,
) (*HTTPServer, error) {
	if logger == nil {
		logger = slog.Default().WithGroup("httpserver")
	}
	if len(routes) == 0 {
		return nil, fmt.Errorf("no routes for %s", address)
	}

	s := &HTTPServer{
		address:  address,
		routes:   routes,
		timeouts: timeouts,
		logger:   logger,
	}

	runner, err := httpserver.NewRunner(httpserver.WithConfigCallback(s.buildConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server runner: %w", err)
	}
	s.server = runner
	return s, nil
}

func (s *HTTPServer) buildConfig() (*httpserver.Config, error) {
	var options []httpserver.ConfigOption
	if s.timeouts.Read > 0 {
		options = append(options, httpserver.WithReadTimeout(s.timeouts.Read))
	}
	if s.timeouts.Write > 0 {
		options = append(options, httpserver.WithWriteTimeout(s.timeouts.Write))
	}
	if s.timeouts.Idle > 0 {
		options = append(options, httpserver.WithIdleTimeout(s.timeouts.Idle))
	}
	if s.timeouts.Drain > 0 {
		options = append(options, httpserver.WithDrainTimeout(s.timeouts.Drain))
	}

	cfg, err := httpserver.NewConfig(s.address, s.routes, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server config: %w", err)
	}
	return cfg, nil
}

func (s *HTTPServer) String() string {
	return fmt.Sprintf("HTTPServer[%s]", s.address)
}

// Run blocks serving requests until ctx is canceled or Stop is called.
func (s *HTTPServer) Run(ctx context.Context) error {
	s.logger.Debug("Starting HTTP server", "address", s.address, "routes", len(s.routes))
	return s.server.Run(ctx)
}

func (s *HTTPServer) Stop() {
	s.logger.Debug("Stopping HTTP server", "address", s.address)
	s.server.Stop()
}

func (s *HTTPServer) GetState() string {
	if s.server == nil {
		return finitestate.StatusUnknown
	}
	return s.server.GetState()
}

// IsReady reports whether the listener accepts connections and the runner
// has reached Running.
func (s *HTTPServer) IsReady() bool {
	return s.server != nil && s.server.IsReady()
}

func (s *HTTPServer) GetStateChan(ctx context.Context) <-chan string {
	return s.server.GetStateChan(ctx)
}

// Address returns the listen address.
func (s *HTTPServer) Address() string {
	return s.address
}

// Routes returns the number of mounted routes.
func (s *HTTPServer) Routes() int {
	return len(s.routes)
}
