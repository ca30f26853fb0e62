// Package config resolves runtime settings from PIXVERSE_* environment
// variables. Command-line flags are applied on top by the cmd package.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
)

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "PIXVERSE_"

// DateLayout is the accepted format for TargetDate.
const DateLayout = "2006-01-02"

// Config controls runtime behavior for the app.
type Config struct {
	// DBPath is the SQLite file. Empty means store.DefaultDBPath.
	DBPath string `env:"DB"`

	// ContentPath is an optional YAML content pack replacing the built-in one.
	ContentPath string `env:"CONTENT"`

	// LogFile receives diagnostics. Empty discards them, since the TUI owns
	// the terminal.
	LogFile string `env:"LOG_FILE"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL"`

	// TargetDate is the birthday in YYYY-MM-DD. Empty means Dec 25 of the
	// current year.
	TargetDate string `env:"TARGET_DATE"`

	// FairShuffle deals only solvable puzzle boards.
	FairShuffle bool `env:"FAIR_SHUFFLE"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:    "info",
		FairShuffle: true,
	}
}

// Load returns DefaultConfig overlaid with the process environment.
func Load() (Config, error) {
	return LoadFrom(nil)
}

// LoadFrom is Load with an explicit environment; nil means os.Environ.
func LoadFrom(environ map[string]string) (Config, error) {
	cfg := DefaultConfig()
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field formats and normalises empty values.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}

	c.TargetDate = strings.TrimSpace(c.TargetDate)
	if c.TargetDate != "" {
		if _, err := time.ParseInLocation(DateLayout, c.TargetDate, time.Local); err != nil {
			return fmt.Errorf("invalid target date %q: want YYYY-MM-DD", c.TargetDate)
		}
	}
	return nil
}

// Level returns the parsed log level.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// ErrNoTargetDate is returned by ExplicitTarget when TargetDate is unset.
var ErrNoTargetDate = errors.New("no target date configured")

// ExplicitTarget parses TargetDate in loc.
func (c Config) ExplicitTarget(loc *time.Location) (time.Time, error) {
	if c.TargetDate == "" {
		return time.Time{}, ErrNoTargetDate
	}
	return time.ParseInLocation(DateLayout, c.TargetDate, loc)
}
