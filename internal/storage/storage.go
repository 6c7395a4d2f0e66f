// Package storage persists the task collection and the session marker to
// two independent file slots.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"todo/internal/store"
)

// ErrCorruptState is returned when a slot exists but cannot be parsed.
var ErrCorruptState = errors.New("corrupt stored state")

// Slots is the persistence adapter: one slot holding the serialized task
// collection, one holding the last-authenticated username. Each write
// overwrites the prior value wholesale.
type Slots struct {
	tasksPath   string
	sessionPath string
}

// New creates slots backed by the given file paths. The files need not
// exist yet; an absent slot reads as empty.
func New(tasksPath, sessionPath string) *Slots {
	return &Slots{
		tasksPath:   tasksPath,
		sessionPath: sessionPath,
	}
}

// SaveTasks serializes the full task collection into the tasks slot,
// overwriting any prior value.
func (s *Slots) SaveTasks(tasks []store.Task) error {
	if tasks == nil {
		tasks = []store.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.tasksPath, data, 0600)
}

// LoadTasks reads the tasks slot. An absent slot yields an empty sequence;
// an unparseable slot yields ErrCorruptState.
func (s *Slots) LoadTasks() ([]store.Task, error) {
	data, err := os.ReadFile(s.tasksPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var tasks []store.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptState, s.tasksPath, err)
	}
	return tasks, nil
}

// SaveSessionMarker writes the active username into the session slot.
func (s *Slots) SaveSessionMarker(username string) error {
	return os.WriteFile(s.sessionPath, []byte(username+"\n"), 0600)
}

// LoadSessionMarker reads the session slot. Returns the empty string when
// the slot is absent or blank.
func (s *Slots) LoadSessionMarker() (string, error) {
	data, err := os.ReadFile(s.sessionPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// ClearSessionMarker removes the session slot. Clearing an absent slot is
// not an error.
func (s *Slots) ClearSessionMarker() error {
	if err := os.Remove(s.sessionPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
