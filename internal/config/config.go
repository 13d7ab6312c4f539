// Package config handles environment settings and the XDG configuration directory.
package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// AppName is the application directory name.
	AppName = "taskboard"

	// TokenFile is the stored token filename.
	TokenFile = "token.json"

	// ProfileFile is the stored user profile filename.
	ProfileFile = "profile.json"

	// OrderFile is the persisted task order filename.
	OrderFile = "order.json"
)

// Env holds settings read from the environment.
type Env struct {
	// BaseURL is the backend API base URL.
	BaseURL string `env:"TASKBOARD_API_URL" env-default:"http://127.0.0.1:8000"`

	// Timeout is the per-request timeout for API calls.
	Timeout time.Duration `env:"TASKBOARD_TIMEOUT" env-default:"10s"`
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// BaseURL is the backend API base URL.
	BaseURL string

	// Timeout is the per-request timeout for API calls.
	Timeout time.Duration

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a new Config with the default or specified config directory.
// Environment variables are read via cleanenv; if configDir is empty, uses
// XDG_CONFIG_HOME/taskboard or $HOME/.config/taskboard.
func New(configDir string) (*Config, error) {
	var env Env
	if err := cleanenv.ReadEnv(&env); err != nil {
		return nil, err
	}

	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:     dir,
		BaseURL: env.BaseURL,
		Timeout: env.Timeout,
	}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// TokenPath returns the path to the stored token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// ProfilePath returns the path to the stored profile file.
func (c *Config) ProfilePath() string {
	return filepath.Join(c.Dir, ProfileFile)
}

// OrderPath returns the path to the persisted task order file.
func (c *Config) OrderPath() string {
	return filepath.Join(c.Dir, OrderFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// Logger returns a debug logger writing to w when Debug is set, and a
// discarding logger otherwise.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	if c.Debug {
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.DiscardHandler)
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}
