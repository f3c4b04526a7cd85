package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeConfig writes content to a temp config file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".entryline.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// clearEnv unsets every ENTRYLINE_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range []string{EnvConfig, EnvFormat, EnvNoColor, EnvTheme, EnvLogLevel} {
		t.Setenv(env, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if err != nil {
			t.Fatalf("Load() unexpected error: %v", err)
		}
		if *cfg != *Default() {
			t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
		}
	})

	t.Run("valid yaml file", func(t *testing.T) {
		clearEnv(t)
		path := writeConfig(t, "format: json\nno-color: true\ntheme: dracula\nlog-level: debug\n")

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() unexpected error: %v", err)
		}
		want := Config{Format: "json", NoColor: true, Theme: "dracula", LogLevel: "debug"}
		if *cfg != want {
			t.Errorf("Load() = %+v, want %+v", *cfg, want)
		}
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		clearEnv(t)
		path := writeConfig(t, "format: toml\n")

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() unexpected error: %v", err)
		}
		if cfg.Format != "toml" || cfg.Theme != "entryline" || cfg.LogLevel != "warning" {
			t.Errorf("Load() = %+v", *cfg)
		}
	})

	for name, content := range map[string]string{
		"empty file":   "",
		"blank lines":  "\n\n  \n",
		"comment only": "# comment only\n",
	} {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			cfg, err := Load(writeConfig(t, content))
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			if *cfg != *Default() {
				t.Errorf("Load() = %+v, want defaults", *cfg)
			}
		})
	}

	t.Run("comment only keeps env overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvFormat, "json")

		cfg, err := Load(writeConfig(t, "# format: yaml\n"))
		if err != nil {
			t.Fatalf("Load() unexpected error: %v", err)
		}
		if cfg.Format != "json" || cfg.Theme != "entryline" {
			t.Errorf("Load() = %+v", *cfg)
		}
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		clearEnv(t)
		if _, err := Load(writeConfig(t, "colour: red\n")); err == nil {
			t.Error("expected strict decoding error, got nil")
		}
	})

	t.Run("path from env", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvConfig, writeConfig(t, "format: yaml\n"))

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() unexpected error: %v", err)
		}
		if cfg.Format != "yaml" {
			t.Errorf("Format = %q, want yaml", cfg.Format)
		}
	})
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "format: json\ntheme: charm\n")
	t.Setenv(EnvFormat, "toml")
	t.Setenv(EnvNoColor, "1")
	t.Setenv(EnvLogLevel, "info")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	want := Config{Format: "toml", NoColor: true, Theme: "charm", LogLevel: "info"}
	if *cfg != want {
		t.Errorf("Load() = %+v, want %+v", *cfg, want)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		wantErr string
	}{
		{"bad format", "format: xml\n", nil, `unknown format "xml"`},
		{"bad theme", "theme: neon\n", nil, `unknown theme "neon"`},
		{"bad level", "log-level: loud\n", nil, `unknown log level "loud"`},
		{"bad no-color env", "", map[string]string{EnvNoColor: "maybe"}, EnvNoColor},
		{"bad format env", "", map[string]string{EnvFormat: "csv"}, `unknown format "csv"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}
