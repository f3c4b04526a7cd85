package main

import (
	"context"
	"errors"
	"os"

	"github.com/indaco/entryline/internal/cli"
	"github.com/indaco/entryline/internal/config"
	"github.com/indaco/entryline/internal/printer"
	"github.com/indaco/entryline/internal/tui"
	urfavecli "github.com/urfave/cli/v3"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		if msg := err.Error(); msg != "" {
			printer.PrintError(msg)
		}
		os.Exit(exitCode(err))
	}
}

// runCLI loads configuration and runs the root command with args.
func runCLI(args []string) error {
	cfg, err := config.LoadConfigFn("")
	if err != nil {
		return err
	}

	app := cli.New(cfg, tui.NewPrompter())
	return app.Run(context.Background(), args)
}

func exitCode(err error) int {
	var exitErr urfavecli.ExitCoder
	if errors.As(err, &exitErr) && exitErr.ExitCode() != 0 {
		return exitErr.ExitCode()
	}
	return 1
}
