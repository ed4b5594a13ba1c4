package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := newApp()
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newApp builds the root command. Running it without a subcommand starts
// the dev server.
func newApp() *cli.Command {
	logs := &logOutput{}
	return &cli.Command{
		Name:    "hytopia-dev",
		Version: Version,
		Usage:   "Local development server for Hytopia games and examples",
		Flags:   rootFlags(),
		Before:  logs.before,
		After:   logs.after,
		Action:  serverAction,
		Commands: []*cli.Command{
			newServerCmd(),
			newValidateCmd(),
			newTunnelCmd(),
			newVersionCmd(),
		},
	}
}
