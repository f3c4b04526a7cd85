package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/indaco/entryline/internal/commands/check"
	"github.com/indaco/entryline/internal/commands/normalize"
	"github.com/indaco/entryline/internal/commands/parse"
	"github.com/indaco/entryline/internal/config"
	"github.com/indaco/entryline/internal/printer"
	"github.com/indaco/entryline/internal/tui"
	"github.com/indaco/entryline/internal/version"
	"github.com/sirupsen/logrus"
	urfavecli "github.com/urfave/cli/v3"
)

// New builds and returns the root CLI command, configuring all subcommands
// and flags for the entryline cli.
func New(cfg *config.Config, prompter tui.Prompter) *urfavecli.Command {
	if cfg == nil {
		cfg = config.Default()
	}

	return &urfavecli.Command{
		Name:                  "entryline",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Parse timestamped version entry lines",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
				Value: cfg.NoColor,
			},
			&urfavecli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warning, error",
				Value: cfg.LogLevel,
			},
			&urfavecli.StringFlag{
				Name:  "theme",
				Usage: "Prompt theme: " + strings.Join(tui.ValidThemes, ", "),
				Value: cfg.Theme,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(cmd.Bool("no-color"))
			tui.SetTheme(cmd.String("theme"))
			if err := setupLogging(cmd.String("log-level")); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
		// Exit codes are handled by main so the command can be run in tests.
		ExitErrHandler: func(ctx context.Context, cmd *urfavecli.Command, err error) {},
		Commands: []*urfavecli.Command{
			parse.Run(cfg, prompter),
			normalize.Run(cfg),
			check.Run(),
		},
	}
}

func setupLogging(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return nil
}
