package main

import (
	"context"
	"fmt"

	"github.com/atlanticdynamic/hytopia-dev/internal/logging"
	"github.com/atlanticdynamic/hytopia-dev/internal/logging/writers"
	"github.com/urfave/cli/v3"
)

// logOutput owns the log destination for the lifetime of one command run.
type logOutput struct {
	close func() error
}

func (l *logOutput) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	format, err := logging.ParseFormat(cmd.String(flagLogFormat))
	if err != nil {
		return ctx, cli.Exit(err, 1)
	}

	w, closeFn, err := writers.Open(cmd.String(flagLogOutput))
	if err != nil {
		return ctx, cli.Exit(fmt.Errorf("failed to open log output: %w", err), 1)
	}
	l.close = closeFn

	logging.SetupLogger(format, cmd.String(flagLogLevel), w)
	return ctx, nil
}

func (l *logOutput) after(_ context.Context, _ *cli.Command) error {
	if l.close == nil {
		return nil
	}
	return l.close()
}
