// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"todo/internal/app"
	"todo/internal/config"
	"todo/internal/directory"
)

// DefaultUsers is the directory most tests seed: two regular users and one
// admin.
func DefaultUsers() []directory.User {
	return []directory.User{
		{Username: "alice", Password: "wonderland", Admin: false},
		{Username: "bob", Password: "builder", Admin: false},
		{Username: "root", Password: "toor", Admin: true},
	}
}

// Env is a wired application over a temporary config directory.
type Env struct {
	Cfg *config.Config
	App *app.App
}

// NewEnv creates a temp config dir seeded with the given users and builds
// the application over it.
func NewEnv(t *testing.T, users []directory.User) *Env {
	t.Helper()

	cfg := &config.Config{Dir: t.TempDir()}
	WriteUsers(t, cfg, users)
	return open(t, cfg)
}

// Reopen rebuilds the application over the same config directory,
// simulating a process restart.
func (e *Env) Reopen(t *testing.T) *Env {
	t.Helper()
	return open(t, e.Cfg)
}

// WriteUsers writes the user directory file into the config dir.
func WriteUsers(t *testing.T, cfg *config.Config, users []directory.User) {
	t.Helper()

	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		t.Fatalf("marshal users: %v", err)
	}
	if err := os.WriteFile(cfg.UsersPath(), data, 0600); err != nil {
		t.Fatalf("write users: %v", err)
	}
}

func open(t *testing.T, cfg *config.Config) *Env {
	t.Helper()

	application, err := app.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	return &Env{Cfg: cfg, App: application}
}
