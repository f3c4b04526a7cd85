package parse

import (
	"context"
	"errors"
	"fmt"

	"github.com/indaco/entryline/internal/cli/flags"
	"github.com/indaco/entryline/internal/config"
	"github.com/indaco/entryline/internal/entry"
	"github.com/indaco/entryline/internal/render"
	"github.com/indaco/entryline/internal/tui"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

// ErrNoLine is returned when no line is given and no prompt can be shown.
var ErrNoLine = errors.New("missing LINE argument")

// isInteractive reports whether the prompt may be used. Tests override it.
var isInteractive = tui.IsInteractive

// Run returns the "parse" command.
func Run(cfg *config.Config, prompter tui.Prompter) *cli.Command {
	return &cli.Command{
		Name:  "parse",
		Usage: "Parse an entry line and print its fields",
		UsageText: `entryline parse [--format f] [--line LINE | LINE]

LINE has the form:
  YYYY-MM-DD HH:MM|MAJOR.MINOR.PATCH[-EXT]|MAX:V1,V2,...

"|" and ":" are interchangeable as the top-level separators.
Use --line="" to parse an empty line. Without LINE, an interactive prompt is shown when running in a terminal.`,
		Flags: []cli.Flag{
			flags.FormatFlag(cfg),
			flags.LineFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runParseCmd(cmd, prompter)
		},
	}
}

func runParseCmd(cmd *cli.Command, prompter tui.Prompter) error {
	format, err := flags.Format(cmd)
	if err != nil {
		return err
	}

	line, err := readLine(cmd, prompter)
	if err != nil {
		return err
	}

	e, err := entry.Parse(line)
	if err != nil {
		logrus.WithField("stage", entry.Stage(err)).Debugf("parse failed: %q", line)
		return errors.New(entry.Describe(err))
	}
	logrus.WithFields(logrus.Fields{
		"version": e.Version.String(),
		"values":  len(e.Values),
	}).Debug("parsed entry")

	out, err := render.Entry(e, format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.Root().Writer, out)
	return err
}

func readLine(cmd *cli.Command, prompter tui.Prompter) (string, error) {
	if line, ok := flags.Line(cmd); ok {
		return line, nil
	}
	if prompter == nil || !isInteractive() {
		return "", ErrNoLine
	}

	logrus.Debug("no LINE argument, prompting")
	return prompter.Line("Entry line", "2024-01-15 09:30|1.2.3|100:5,10,15", func(s string) error {
		if _, err := entry.Parse(s); err != nil {
			return errors.New(entry.Describe(err))
		}
		return nil
	})
}
