// Package config loads user settings.
//
// Settings are resolved in priority order: command-line flags, environment
// variables, the YAML config file, then built-in defaults.
//
//   - Config: $XDG_CONFIG_HOME/aimarketcap/config.yaml
//   - Data:   $XDG_DATA_HOME/aimarketcap/aimarketcap.db
//   - State:  $XDG_STATE_HOME/aimarketcap/aimarketcap.log
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const appName = "aimarketcap"

// Presentation selects how onboarding headings are revealed.
type Presentation string

const (
	PresentationPlain Presentation = "plain"
	PresentationTyped Presentation = "typed"
)

// Config is the top-level configuration.
type Config struct {
	DBPath   string `yaml:"db_path,omitempty"`
	LogPath  string `yaml:"log_path,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"` // debug, info, warn, error

	// TransitionDelay is how long a step change waits for its exit animation.
	TransitionDelay time.Duration `yaml:"transition_delay,omitempty"`

	Presentation Presentation  `yaml:"presentation,omitempty"`
	TypeSpeed    time.Duration `yaml:"type_speed,omitempty"` // per character, typed mode only

	// Splash shows the animated banner before the landing carousel.
	Splash *bool `yaml:"splash,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	splash := true
	return Config{
		LogLevel:        "info",
		TransitionDelay: 300 * time.Millisecond,
		Presentation:    PresentationTyped,
		TypeSpeed:       30 * time.Millisecond,
		Splash:          &splash,
	}
}

// ShowSplash reports whether the splash screen is enabled.
func (c Config) ShowSplash() bool {
	return c.Splash == nil || *c.Splash
}

// Validate checks enumerated and range-limited settings.
func (c Config) Validate() error {
	switch c.Presentation {
	case PresentationPlain, PresentationTyped:
	default:
		return fmt.Errorf("presentation must be %q or %q, got %q", PresentationPlain, PresentationTyped, c.Presentation)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	if c.TransitionDelay < 0 {
		return fmt.Errorf("transition_delay must not be negative, got %v", c.TransitionDelay)
	}
	if c.TypeSpeed < 0 {
		return fmt.Errorf("type_speed must not be negative, got %v", c.TypeSpeed)
	}
	return nil
}

// Dir returns the XDG config directory.
func Dir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// StateDir returns the XDG state directory, used for logs.
func StateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", appName)
}

// DefaultPath returns the config file location.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads the config file at path over the defaults and applies
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if cfg.LogPath == "" {
		if dir := StateDir(); dir != "" {
			cfg.LogPath = filepath.Join(dir, appName+".log")
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if p := os.Getenv("AIMARKETCAP_DB"); p != "" {
		cfg.DBPath = p
	}
	if p := os.Getenv("AIMARKETCAP_LOG"); p != "" {
		cfg.LogPath = p
	}
}

// Save writes cfg as YAML to path, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
