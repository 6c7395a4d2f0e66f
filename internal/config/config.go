// Package config handles XDG configuration directory and file paths.
package config

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// UsersFile is the user directory filename.
	UsersFile = "users.json"

	// TasksFile is the persisted task collection filename.
	TasksFile = "tasks.json"

	// SessionFile is the persisted session marker filename.
	SessionFile = "session"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// UsersSource overrides where the user directory is loaded from:
	// a file path or an http(s) URL. Empty means UsersPath().
	UsersSource string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todo or $HOME/.config/todo.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{Dir: dir}, nil
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

// UsersPath returns the default path to the user directory file.
func (c *Config) UsersPath() string {
	return filepath.Join(c.Dir, UsersFile)
}

// DirectorySource returns where the user directory should be loaded from.
func (c *Config) DirectorySource() string {
	if c.UsersSource != "" {
		return c.UsersSource
	}
	return c.UsersPath()
}

// TasksPath returns the path to the persisted task collection.
func (c *Config) TasksPath() string {
	return filepath.Join(c.Dir, TasksFile)
}

// SessionPath returns the path to the persisted session marker.
func (c *Config) SessionPath() string {
	return filepath.Join(c.Dir, SessionFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
