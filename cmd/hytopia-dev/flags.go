package main

import (
	"github.com/atlanticdynamic/hytopia-dev/internal/config"
	"github.com/atlanticdynamic/hytopia-dev/internal/server/httpserver"
	"github.com/urfave/cli/v3"
)

const (
	flagConfig    = "config"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagLogOutput = "log-output"

	flagReadTimeout  = "read-timeout"
	flagWriteTimeout = "write-timeout"
	flagIdleTimeout  = "idle-timeout"
	flagDrainTimeout = "drain-timeout"
)

func rootFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagConfig,
			Aliases: []string{"c"},
			Usage:   "Path to an optional TOML settings file",
			Sources: cli.EnvVars(config.EnvConfigFile),
		},
		&cli.StringFlag{
			Name:    flagLogLevel,
			Usage:   "Log level (trace, debug, info, warn, error)",
			Value:   "info",
			Sources: cli.EnvVars(config.EnvLogLevel),
		},
		&cli.StringFlag{
			Name:  flagLogFormat,
			Usage: "Log format (text, json)",
			Value: "text",
		},
		&cli.StringFlag{
			Name:  flagLogOutput,
			Usage: "Log destination (stderr, stdout, or a file path)",
			Value: "stderr",
		},
		&cli.DurationFlag{
			Name:  flagReadTimeout,
			Usage: "HTTP read timeout (0 keeps the server default)",
		},
		&cli.DurationFlag{
			Name:  flagWriteTimeout,
			Usage: "HTTP write timeout (0 keeps the server default)",
		},
		&cli.DurationFlag{
			Name:  flagIdleTimeout,
			Usage: "HTTP idle timeout (0 keeps the server default)",
		},
		&cli.DurationFlag{
			Name:  flagDrainTimeout,
			Usage: "How long shutdown waits for in-flight requests (0 keeps the server default)",
		},
	}
}

// serverTimeouts reads the HTTP timeout flags.
func serverTimeouts(cmd *cli.Command) httpserver.Timeouts {
	return httpserver.Timeouts{
		Read:  cmd.Duration(flagReadTimeout),
		Write: cmd.Duration(flagWriteTimeout),
		Idle:  cmd.Duration(flagIdleTimeout),
		Drain: cmd.Duration(flagDrainTimeout),
	}
}
