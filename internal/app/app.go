// Package app wires the core components together at boot.
package app

import (
	"context"
	"errors"
	"fmt"

	"todo/internal/auth"
	"todo/internal/config"
	"todo/internal/directory"
	"todo/internal/session"
	"todo/internal/storage"
	"todo/internal/store"
)

// App holds the constructed core: directory, store, session manager, and
// gate. It is built once at boot and passed by reference to the adapters;
// there is no ambient global state.
type App struct {
	Directory *directory.Directory
	Store     *store.Store
	Sessions  *session.Manager
	Gate      *auth.Gate

	// LoadWarning is set when the persisted task slot was present but
	// unparseable. The store starts empty and the next mutation
	// overwrites the bad slot.
	LoadWarning error
}

// New loads the user directory, opens the persistence slots, seeds the
// store, and restores any persisted session. The directory load completes
// before the store exists, so the store is never queried against an
// unloaded directory.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	dir, err := directory.Load(ctx, cfg.DirectorySource())
	if err != nil {
		return nil, err
	}

	if err := cfg.EnsureDir(); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	slots := storage.New(cfg.TasksPath(), cfg.SessionPath())

	tasks, err := slots.LoadTasks()
	var warning error
	if err != nil {
		if !errors.Is(err, storage.ErrCorruptState) {
			return nil, err
		}
		// Corrupt slot: surface it and start with an empty store.
		warning = err
		tasks = nil
	}

	sessions := session.NewManager(dir, slots)
	if _, err := sessions.Restore(); err != nil {
		return nil, err
	}

	return &App{
		Directory:   dir,
		Store:       store.New(dir, slots, tasks),
		Sessions:    sessions,
		Gate:        auth.NewGate(sessions),
		LoadWarning: warning,
	}, nil
}
