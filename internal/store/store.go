package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// ErrEmptyName is returned when a task name trims to nothing.
var ErrEmptyName = errors.New("task name required")

// ErrUnknownOwner is returned when a task would be owned by a username not
// present in the user directory.
var ErrUnknownOwner = errors.New("unknown owner")

// ErrNotFound is returned when no task has the requested id.
var ErrNotFound = errors.New("task not found")

// Directory resolves usernames against the loaded user directory.
type Directory interface {
	Exists(username string) bool
}

// Persister mirrors the task collection to durable storage. Every mutation
// writes the full collection; there is no batching.
type Persister interface {
	SaveTasks(tasks []Task) error
}

// Store holds the authoritative in-memory task list. All mutations persist
// synchronously before returning, and a failed write is rolled back so the
// in-memory list never drifts from the persisted slot.
//
// The store is safe for concurrent use; the CLI never needs that, but the
// HTTP adapter serves handlers concurrently.
type Store struct {
	mu        sync.RWMutex
	tasks     []Task
	dir       Directory
	persister Persister
}

// New creates a store over the given directory and persister, seeded with
// previously persisted tasks.
func New(dir Directory, persister Persister, tasks []Task) *Store {
	return &Store{
		tasks:     tasks,
		dir:       dir,
		persister: persister,
	}
}

// Create appends a new pending task owned by owner. The name is trimmed;
// an empty name or an owner missing from the directory is rejected.
func (s *Store) Create(name, owner string) (Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Task{}, ErrEmptyName
	}
	if !s.dir.Exists(owner) {
		return Task{}, fmt.Errorf("%w: %s", ErrUnknownOwner, owner)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := Task{
		ID:     uuid.NewString(),
		Name:   name,
		Status: StatusPending,
		Owner:  owner,
	}
	s.tasks = append(s.tasks, task)

	if err := s.persist(); err != nil {
		s.tasks = s.tasks[:len(s.tasks)-1]
		return Task{}, err
	}
	return task, nil
}

// Toggle flips a task between pending and done.
func (s *Store) Toggle(id string) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return Task{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	s.tasks[i].Status = s.tasks[i].Status.Toggled()
	if err := s.persist(); err != nil {
		s.tasks[i].Status = s.tasks[i].Status.Toggled()
		return Task{}, err
	}
	return s.tasks[i], nil
}

// Delete removes a task from the store.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	removed := s.tasks[i]
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)

	if err := s.persist(); err != nil {
		s.tasks = append(s.tasks[:i], append([]Task{removed}, s.tasks[i:]...)...)
		return err
	}
	return nil
}

// ListFor returns the tasks visible under scope in insertion order.
func (s *Store) ListFor(scope Scope) []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Task
	for _, t := range s.tasks {
		if scope.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Len returns the total number of tasks regardless of scope.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// index returns the position of the task with the given id, or -1.
// Caller must hold the lock.
func (s *Store) index(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// persist writes the full collection. Caller must hold the write lock.
func (s *Store) persist() error {
	if err := s.persister.SaveTasks(s.tasks); err != nil {
		return fmt.Errorf("persist tasks: %w", err)
	}
	return nil
}
