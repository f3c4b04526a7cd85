package flags

import (
	"fmt"
	"strings"

	"github.com/indaco/entryline/internal/config"
	"github.com/indaco/entryline/internal/render"
	"github.com/urfave/cli/v3"
)

// FormatFlag returns the shared --format flag, defaulting to the configured
// output format.
func FormatFlag(cfg *config.Config) cli.Flag {
	formats := make([]string, len(render.Formats))
	for i, f := range render.Formats {
		formats[i] = f.String()
	}

	value := render.FormatText.String()
	if cfg != nil && cfg.Format != "" {
		value = cfg.Format
	}

	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Output format: " + strings.Join(formats, ", "),
		Value:   value,
	}
}

// Format reads and validates the --format flag.
func Format(cmd *cli.Command) (render.Format, error) {
	f := render.Format(cmd.String("format"))
	if !f.IsValid() {
		return "", fmt.Errorf("invalid format: %q", f)
	}
	return f, nil
}

// LineFlag returns the --line flag. urfave/cli drops empty positional
// arguments, so an empty line can only be passed as --line="".
func LineFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "line",
		Aliases: []string{"l"},
		Usage:   "Entry line to parse, instead of the LINE argument",
	}
}

// Line returns the line given with --line, or else the joined positional
// arguments. ok is false when neither was given.
func Line(cmd *cli.Command) (line string, ok bool) {
	if cmd.IsSet("line") {
		return cmd.String("line"), true
	}
	if cmd.Args().Present() {
		return JoinArgs(cmd), true
	}
	return "", false
}

// JoinArgs rebuilds a single line from positional arguments so an unquoted
// "2024-01-15 09:30|..." split by the shell still parses.
func JoinArgs(cmd *cli.Command) string {
	return strings.Join(cmd.Args().Slice(), " ")
}
