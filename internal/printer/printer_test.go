package printer

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// TestRenderFunctions verifies that all render functions keep the input text.
func TestRenderFunctions(t *testing.T) {
	tests := []struct {
		name     string
		function func(string) string
	}{
		{"Faint", Faint},
		{"Bold", Bold},
		{"Success", Success},
		{"Error", Error},
		{"Warning", Warning},
		{"Info", Info},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.function("1.2.3-beta")
			if !strings.Contains(result, "1.2.3-beta") {
				t.Errorf("%s() result does not contain input text, got %q", tt.name, result)
			}
		})
	}
}

func TestSetNoColor(t *testing.T) {
	SetNoColor(true)
	t.Cleanup(func() { SetNoColor(false) })

	if got := Error("missing patch"); got != "missing patch" {
		t.Errorf("Error() with no color = %q, want plain text", got)
	}
	if got := Info("x"); strings.Contains(got, "\x1b[") {
		t.Errorf("Info() with no color contains ANSI escapes: %q", got)
	}
}

func TestField(t *testing.T) {
	SetNoColor(true)
	t.Cleanup(func() { SetNoColor(false) })

	got := Field("version", "1.2.3")
	if !strings.HasPrefix(got, "version") || !strings.HasSuffix(got, "1.2.3") {
		t.Errorf("Field() = %q", got)
	}
	// Labels are padded to a fixed width so values line up.
	if len(Field("max", "1")) != len(Field("timestamp", "1")) {
		t.Errorf("Field() labels are not aligned: %q vs %q", Field("max", "1"), Field("timestamp", "1"))
	}
}

func TestFprintln(t *testing.T) {
	var buf bytes.Buffer
	Fprintln(&buf, "ok")
	if buf.String() != "ok\n" {
		t.Errorf("Fprintln() wrote %q, want %q", buf.String(), "ok\n")
	}
}

func TestPrintError(t *testing.T) {
	output := captureStderr(t, func() { PrintError("missing patch") })

	if !strings.Contains(output, "missing patch") {
		t.Errorf("PrintError() output %q does not contain input", output)
	}
	if !strings.HasSuffix(output, "\n") {
		t.Error("PrintError() output does not end with newline")
	}
}

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w

	fn()

	_ = w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}
