// Package config loads tubescout settings from a TOML file, the environment
// and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/csheth/tubescout/internal/backend"
	"github.com/csheth/tubescout/internal/logger"
	"github.com/csheth/tubescout/internal/tabs"
)

const appName = "tubescout"

// Duration is a time.Duration written as "3s" or "1m30s" in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the full application configuration.
type Config struct {
	Backend     BackendConfig     `toml:"backend"`
	UI          UIConfig          `toml:"ui"`
	Preferences PreferencesConfig `toml:"preferences"`
	Log         LogConfig         `toml:"log"`
}

type BackendConfig struct {
	// Mode is "demo" or "http".
	Mode      string   `toml:"mode"`
	Endpoint  string   `toml:"endpoint"`
	APIKey    string   `toml:"api_key"`
	Timeout   Duration `toml:"timeout"`
	DemoDelay Duration `toml:"demo_delay"`
	// RateLimit is the maximum number of backend requests per second.
	RateLimit float64 `toml:"rate_limit"`
}

type UIConfig struct {
	AltScreen       bool   `toml:"alt_screen"`
	DefaultLanguage string `toml:"default_language"`
	DefaultTab      string `toml:"default_tab"`
}

type PreferencesConfig struct {
	// Path of the preference file. Empty keeps preferences in memory only.
	Path  string `toml:"path"`
	Watch bool   `toml:"watch"`
}

type LogConfig struct {
	Level string `toml:"level"`
	// File receives the log. Empty disables logging.
	File string `toml:"file"`
	// Development turns off sampling and adds stack traces to warnings.
	Development bool `toml:"development"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Backend: BackendConfig{
			Mode:      backend.ModeDemo,
			Timeout:   Duration{60 * time.Second},
			DemoDelay: Duration{backend.DefaultDemoDelay},
			RateLimit: 1,
		},
		UI: UIConfig{
			AltScreen:       true,
			DefaultLanguage: backend.DefaultLanguage,
			DefaultTab:      tabs.Summary.String(),
		},
		Preferences: PreferencesConfig{
			Path:  defaultPath(os.UserConfigDir, "preferences.toml"),
			Watch: true,
		},
		Log: LogConfig{
			Level: "info",
			File:  defaultPath(os.UserCacheDir, appName+".log"),
		},
	}
}

func defaultPath(base func() (string, error), name string) string {
	dir, err := base()
	if err != nil || dir == "" {
		return ""
	}
	return filepath.Join(dir, appName, name)
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	return defaultPath(os.UserConfigDir, "config.toml")
}

// Load reads path (or DefaultPath when empty) over the defaults and applies
// environment overrides. A missing file is not an error. Callers validate
// once every override, including command-line flags, has been applied.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}
	cfg.ApplyEnvOverrides()
	return cfg, nil
}

// ApplyEnvOverrides applies TUBESCOUT_* environment variables.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("TUBESCOUT_BACKEND_MODE"); v != "" {
		c.Backend.Mode = v
	}
	if v := os.Getenv("TUBESCOUT_BACKEND_ENDPOINT"); v != "" {
		c.Backend.Endpoint = v
	}
	if v := os.Getenv("TUBESCOUT_BACKEND_API_KEY"); v != "" {
		c.Backend.APIKey = v
	}
	if v := os.Getenv("TUBESCOUT_BACKEND_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Backend.Timeout = Duration{d}
		}
	}
	if v := os.Getenv("TUBESCOUT_DEMO_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Backend.DemoDelay = Duration{d}
		}
	}
	if v := os.Getenv("TUBESCOUT_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	// An explicitly empty value disables the log file.
	if v, ok := os.LookupEnv("TUBESCOUT_LOG_FILE"); ok {
		c.Log.File = v
	}
	if v, ok := os.LookupEnv("TUBESCOUT_PREFS_PATH"); ok {
		c.Preferences.Path = v
	}
	if v := os.Getenv("TUBESCOUT_LOG_DEVELOPMENT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Log.Development = b
		}
	}
	if v := os.Getenv("TUBESCOUT_PREFS_WATCH"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Preferences.Watch = b
		}
	}
}

// ValidationError describes one invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found by Validate.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs ValidationErrors

	switch c.Backend.Mode {
	case backend.ModeDemo:
	case backend.ModeHTTP:
		if strings.TrimSpace(c.Backend.Endpoint) == "" {
			errs = append(errs, ValidationError{Field: "backend.endpoint", Message: "required when mode is http"})
		}
	default:
		errs = append(errs, ValidationError{
			Field:   "backend.mode",
			Message: fmt.Sprintf("invalid mode %q, must be one of: demo, http", c.Backend.Mode),
		})
	}
	if c.Backend.Timeout.Duration <= 0 {
		errs = append(errs, ValidationError{Field: "backend.timeout", Message: "must be positive"})
	}
	if c.Backend.DemoDelay.Duration < 0 {
		errs = append(errs, ValidationError{Field: "backend.demo_delay", Message: "must not be negative"})
	}
	if c.Backend.RateLimit < 0 {
		errs = append(errs, ValidationError{Field: "backend.rate_limit", Message: "must not be negative"})
	}
	if _, ok := backend.LookupLanguage(c.UI.DefaultLanguage); !ok {
		errs = append(errs, ValidationError{
			Field:   "ui.default_language",
			Message: fmt.Sprintf("unsupported language %q", c.UI.DefaultLanguage),
		})
	}
	if _, err := tabs.Parse(c.UI.DefaultTab); err != nil {
		errs = append(errs, ValidationError{Field: "ui.default_tab", Message: err.Error()})
	}
	if !logger.ValidLevel(c.Log.Level) {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level %q, must be one of: debug, info, warn, error", c.Log.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BackendOptions converts the backend section into backend constructor options.
func (c *Config) BackendOptions() backend.Config {
	return backend.Config{
		Mode:      c.Backend.Mode,
		Endpoint:  c.Backend.Endpoint,
		APIKey:    c.Backend.APIKey,
		DemoDelay: c.Backend.DemoDelay.Duration,
		RateLimit: c.Backend.RateLimit,
	}
}
