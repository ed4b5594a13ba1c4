package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/atlanticdynamic/hytopia-dev/internal/bootstrap"
	"github.com/atlanticdynamic/hytopia-dev/internal/engine"
	"github.com/robbyt/go-supervisor/supervisor"
	"github.com/urfave/cli/v3"
)

func newServerCmd() *cli.Command {
	return &cli.Command{
		Name:    "server",
		Aliases: []string{"serve"},
		Usage:   "Start the dev server (default)",
		Action:  serverAction,
	}
}

func serverAction(ctx context.Context, cmd *cli.Command) error {
	s, err := loadSettings(cmd.String(flagConfig), os.LookupEnv)
	if err != nil {
		return cli.Exit(err, 1)
	}
	factory := engine.NewFactory(
		engine.WithLogger(slog.Default().WithGroup("engine")),
		engine.WithTimeouts(serverTimeouts(cmd)),
	)
	return runServer(ctx, slog.Default(), s, factory)
}

// runServer runs the bootstrap under a supervisor until ctx is canceled or a
// signal arrives. A nil factory uses the bundled dev engine.
func runServer(ctx context.Context, logger *slog.Logger, s settings, factory engine.Factory) error {
	if factory == nil {
		factory = engine.NewFactory(engine.WithLogger(logger.WithGroup("engine")))
	}

	runner, err := bootstrap.NewRunner(
		s.Config,
		bootstrap.WithLogger(logger),
		bootstrap.WithFactory(factory),
	)
	if err != nil {
		return cli.Exit(fmt.Errorf("failed to create bootstrap: %w", err), 1)
	}

	super, err := supervisor.New(
		supervisor.WithContext(ctx),
		supervisor.WithLogHandler(logger.Handler()),
		supervisor.WithRunnables(runner),
	)
	if err != nil {
		return cli.Exit(fmt.Errorf("failed to create supervisor: %w", err), 1)
	}
	if err := super.Run(); err != nil {
		return cli.Exit(fmt.Errorf("failed to run server: %w", err), 1)
	}

	logger.Info("Server shutdown complete")
	return nil
}
