package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/atlanticdynamic/hytopia-dev/internal/fancy"
	"github.com/urfave/cli/v3"
)

func newValidateCmd() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Aliases:   []string{"lint"},
		Usage:     "Validate the startup configuration and print it",
		ArgsUsage: "[config file]",
		Action:    validateAction,
	}
}

func validateAction(_ context.Context, cmd *cli.Command) error {
	path := cmd.String(flagConfig)
	if cmd.Args().Len() > 0 {
		path = cmd.Args().Get(0)
	}

	s, err := loadSettings(path, os.LookupEnv)
	if err != nil {
		return cli.Exit(fancy.ErrorText("validation failed: "+err.Error()), 1)
	}

	w := outWriter(cmd)
	if path != "" {
		fmt.Fprintf(w, "Configuration file %s is valid\n\n", path)
	} else {
		fmt.Fprint(w, "Configuration is valid\n\n")
	}
	fmt.Fprintln(w, s.Config)
	return nil
}

// outWriter is the root command's writer, or stdout when the command was not
// started through Run.
func outWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
