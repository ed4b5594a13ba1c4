package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/atlanticdynamic/hytopia-dev/internal/config"
	"github.com/atlanticdynamic/hytopia-dev/internal/tunnel"
	"github.com/urfave/cli/v3"
)

func newTunnelCmd() *cli.Command {
	return &cli.Command{
		Name:  "tunnel",
		Usage: "Generate the cloudflared ingress config for every game and example",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "domain",
				Aliases: []string{"d"},
				Usage:   "Tunnel domain; each bundle is exposed as <name>.<domain>",
				Sources: cli.EnvVars(config.EnvTunnel),
			},
			&cli.StringFlag{
				Name:  "service",
				Usage: "Dev server address as seen from the tunnel (default " + tunnel.DefaultService + ")",
			},
			&cli.StringFlag{
				Name:  "template",
				Usage: "Template path (default " + tunnel.DefaultTemplatePath + ")",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output path (default " + tunnel.DefaultOutputPath + ")",
			},
		},
		Action: tunnelAction,
	}
}

func tunnelAction(_ context.Context, cmd *cli.Command) error {
	file, envCatalog, err := readSources(cmd.String(flagConfig), os.LookupEnv)
	if err != nil {
		return cli.Exit(err, 1)
	}

	opts := tunnelOptions(cmd, file)
	cat := file.Catalog().Merge(envCatalog).Resolve()
	if err := cat.Validate(); err != nil {
		return cli.Exit(fmt.Errorf("invalid catalog: %w", err), 1)
	}
	opts.Games = cat.Games
	opts.Examples = cat.Examples

	written, err := tunnel.Generate(opts)
	if err != nil {
		return cli.Exit(err, 1)
	}
	slog.Default().Info("Tunnel config written",
		"path", written, "games", len(opts.Games), "examples", len(opts.Examples))
	return nil
}

// tunnelOptions combines flags with the [tunnel] table of the settings file.
// Flags win.
func tunnelOptions(cmd *cli.Command, file *config.File) tunnel.Options {
	var t config.Tunnel
	if file != nil {
		t = file.Tunnel
	}
	pick := func(flag, fallback string) string {
		if v := cmd.String(flag); v != "" {
			return v
		}
		return fallback
	}
	return tunnel.Options{
		Domain:       pick("domain", t.Domain),
		Service:      pick("service", t.Service),
		TemplatePath: pick("template", t.Template),
		OutputPath:   pick("output", t.Output),
	}
}
