package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/entryline/internal/render"
	"github.com/indaco/entryline/internal/tui"
	"github.com/sirupsen/logrus"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = ".entryline.yaml"

// Environment variables recognised by Load. They take precedence over the
// config file.
const (
	EnvConfig   = "ENTRYLINE_CONFIG"
	EnvFormat   = "ENTRYLINE_FORMAT"
	EnvNoColor  = "ENTRYLINE_NO_COLOR"
	EnvTheme    = "ENTRYLINE_THEME"
	EnvLogLevel = "ENTRYLINE_LOG_LEVEL"
)

// Config holds front-end defaults for the entryline command.
type Config struct {
	Format   string `yaml:"format,omitempty"`
	NoColor  bool   `yaml:"no-color,omitempty"`
	Theme    string `yaml:"theme,omitempty"`
	LogLevel string `yaml:"log-level,omitempty"`
}

// Default returns the configuration used when no file or env is present.
func Default() *Config {
	return &Config{
		Format:   render.FormatText.String(),
		Theme:    tui.DefaultTheme,
		LogLevel: logrus.WarnLevel.String(),
	}
}

// LoadConfigFn is the loader used by the CLI. Tests may replace it.
var LoadConfigFn = Load

// Load reads configuration from path (or ENTRYLINE_CONFIG, or DefaultPath
// when both are empty), then applies environment overrides and validates the
// result. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		path = DefaultPath
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// no file: defaults plus env
	case err != nil:
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	default:
		var fileCfg Config
		decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
		if err := decoder.Decode(&fileCfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
		}
		cfg.merge(&fileCfg)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// merge copies the fields set in the file over the defaults. An empty or
// comment-only file decodes to the zero Config and changes nothing.
func (c *Config) merge(file *Config) {
	if file.Format != "" {
		c.Format = file.Format
	}
	if file.NoColor {
		c.NoColor = true
	}
	if file.Theme != "" {
		c.Theme = file.Theme
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvFormat); v != "" {
		c.Format = v
	}
	if v := os.Getenv(EnvTheme); v != "" {
		c.Theme = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvNoColor); v != "" {
		noColor, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvNoColor, v, err)
		}
		c.NoColor = noColor
	}
	return nil
}

// Validate rejects unknown formats, themes and log levels.
func (c *Config) Validate() error {
	var problems []string

	if !render.Format(c.Format).IsValid() {
		problems = append(problems, fmt.Sprintf("unknown format %q", c.Format))
	}
	if !tui.IsValidTheme(c.Theme) {
		problems = append(problems, fmt.Sprintf("unknown theme %q", c.Theme))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("unknown log level %q", c.LogLevel))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, ", "))
	}
	return nil
}
