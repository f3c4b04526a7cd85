package check

import (
	"context"
	"errors"
	"fmt"

	"github.com/indaco/entryline/internal/cli/flags"
	"github.com/indaco/entryline/internal/entry"
	"github.com/indaco/entryline/internal/printer"
	"github.com/urfave/cli/v3"
)

// Run returns the "check" command. It prints "ok" for a valid line, or the
// failing stage followed by the reason, and exits non-zero on failure.
func Run() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Validate an entry line and report the failing stage",
		UsageText: "entryline check [--line LINE | LINE]",
		Flags: []cli.Flag{
			flags.LineFlag(),
		},
		Action: runCheckCmd,
	}
}

func runCheckCmd(ctx context.Context, cmd *cli.Command) error {
	line, ok := flags.Line(cmd)
	if !ok {
		return errors.New("missing LINE argument")
	}

	w := cmd.Root().Writer
	_, err := entry.Parse(line)
	if err == nil {
		printer.Fprintln(w, printer.Success("ok"))
		return nil
	}

	printer.Fprintln(w, fmt.Sprintf("%s %s", printer.Warning(entry.Stage(err)+":"), printer.Faint(err.Error())))
	return cli.Exit("", 1)
}
