package normalize

import (
	"context"
	"errors"
	"fmt"

	"github.com/indaco/entryline/internal/cli/flags"
	"github.com/indaco/entryline/internal/config"
	"github.com/indaco/entryline/internal/render"
	"github.com/indaco/entryline/internal/semver"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

// Run returns the "normalize" command, which parses a version string and
// prints it in normalized form, or its ordering against --compare.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "normalize",
		Aliases:   []string{"version"},
		Usage:     "Parse a version string and print it normalized",
		UsageText: "entryline normalize [--format f] [--compare OTHER] VERSION",
		Flags: []cli.Flag{
			flags.FormatFlag(cfg),
			&cli.StringFlag{
				Name:    "compare",
				Aliases: []string{"c"},
				Usage:   "Compare VERSION against OTHER and print the ordering",
			},
		},
		Action: runNormalizeCmd,
	}
}

func runNormalizeCmd(ctx context.Context, cmd *cli.Command) error {
	format, err := flags.Format(cmd)
	if err != nil {
		return err
	}
	if cmd.NArg() != 1 {
		return errors.New("expected exactly one VERSION argument")
	}

	raw := cmd.Args().First()
	v, err := semver.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid version %q: %w", raw, err)
	}
	logrus.WithField("input", raw).Debugf("normalized to %s", v)

	var out string
	if cmd.IsSet("compare") {
		rawOther := cmd.String("compare")
		other, err := semver.Parse(rawOther)
		if err != nil {
			return fmt.Errorf("invalid version %q: %w", rawOther, err)
		}
		out, err = render.Comparison(v, other, format)
		if err != nil {
			return err
		}
	} else {
		out, err = render.Version(v, format)
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprint(cmd.Root().Writer, out)
	return err
}
