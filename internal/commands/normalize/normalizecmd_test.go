package normalize

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/indaco/entryline/internal/printer"
	"github.com/indaco/entryline/internal/semver"
	"github.com/urfave/cli/v3"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := &cli.Command{
		Name:     "entryline",
		Writer:   &buf,
		Commands: []*cli.Command{Run(nil)},
	}
	err := root.Run(context.Background(), append([]string{"entryline", "normalize"}, args...))
	return buf.String(), err
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1.2.3", "1.2.3\n"},
		{"1-2-3", "1.2.3\n"},
		{"01.2.3-rc1", "1.2.3-rc1\n"},
		{"1.2.3-", "1.2.3-\n"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out, err := runCmd(t, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestNormalize_Errors(t *testing.T) {
	_, err := runCmd(t, "1.2")
	var missing *semver.MissingFieldError
	if !errors.As(err, &missing) || missing.Field != "patch" {
		t.Errorf("expected missing patch, got %v", err)
	}

	_, err = runCmd(t)
	if err == nil || !strings.Contains(err.Error(), "exactly one VERSION") {
		t.Errorf("expected argument error, got %v", err)
	}

	_, err = runCmd(t, "--format", "csv", "1.2.3")
	if err == nil || !strings.Contains(err.Error(), "invalid format") {
		t.Errorf("expected format error, got %v", err)
	}
}

func TestNormalize_JSON(t *testing.T) {
	out, err := runCmd(t, "-f", "json", "1.2.3-beta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"version":"1.2.3-beta","major":1,"minor":2,"patch":3,"extension":"beta"}` + "\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestNormalize_Compare(t *testing.T) {
	printer.SetNoColor(true)
	t.Cleanup(func() { printer.SetNoColor(false) })

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--compare", "1.2.4", "1.2.3"}, "1.2.3 < 1.2.4\n"},
		{[]string{"-c", "01-2-3", "1.2.3"}, "1.2.3 = 1.2.3\n"},
		{[]string{"-c", "1.0.0-rc.1", "1.0.0"}, "1.0.0 > 1.0.0-rc.1\n"},
		{[]string{"-f", "json", "-c", "2.0.0", "1.2.3"}, `{"version":"1.2.3","other":"2.0.0","order":-1}` + "\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := runCmd(t, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestNormalize_CompareInvalid(t *testing.T) {
	_, err := runCmd(t, "--compare", "1.x.0", "1.2.3")

	var invalid *semver.InvalidIntegerError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidIntegerError, got %v", err)
	}
	if !strings.Contains(err.Error(), `"1.x.0"`) {
		t.Errorf("error should name the other version: %v", err)
	}
}
