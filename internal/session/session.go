// Package session tracks the currently authenticated identity.
package session

import (
	"errors"
	"fmt"
	"sync"

	"todo/internal/directory"
	"todo/internal/store"
)

// ErrInvalidCredentials is returned when no directory record matches the
// supplied username and password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNoSession is returned when a scope is requested while logged out.
var ErrNoSession = errors.New("not logged in")

// Session is an active authenticated identity. At most one exists at a
// time.
type Session struct {
	User directory.User
}

// Scope returns the task visibility for the session: everything for an
// admin, otherwise the session's own tasks.
func (s *Session) Scope() store.Scope {
	if s.User.Admin {
		return store.AllTasks()
	}
	return store.OwnedBy(s.User.Username)
}

// MarkerStore persists the last-authenticated username across restarts.
type MarkerStore interface {
	SaveSessionMarker(username string) error
	LoadSessionMarker() (string, error)
	ClearSessionMarker() error
}

// Manager owns the active session. Sessions persist indefinitely across
// restarts via the marker until an explicit logout or until the marker
// fails to resolve against a freshly loaded directory.
type Manager struct {
	mu      sync.RWMutex
	dir     *directory.Directory
	markers MarkerStore
	active  *Session
}

// NewManager creates a logged-out manager over the given directory and
// marker store.
func NewManager(dir *directory.Directory, markers MarkerStore) *Manager {
	return &Manager{dir: dir, markers: markers}
}

// Login authenticates by plaintext equality against the directory. On
// success it replaces any active session and persists the marker; on
// failure any prior session is left untouched.
func (m *Manager) Login(username, password string) (*Session, error) {
	user, ok := m.dir.Lookup(username)
	if !ok || user.Password != password {
		return nil, ErrInvalidCredentials
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sess := &Session{User: user}
	if err := m.markers.SaveSessionMarker(user.Username); err != nil {
		return nil, fmt.Errorf("persist session marker: %w", err)
	}
	m.active = sess
	return sess, nil
}

// Logout clears the active session and erases the persisted marker
// unconditionally. Calling it while logged out is a no-op.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.active = nil
	if err := m.markers.ClearSessionMarker(); err != nil {
		return fmt.Errorf("clear session marker: %w", err)
	}
	return nil
}

// Current returns the active session, if any.
func (m *Manager) Current() (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.active, m.active != nil
}

// Scope returns the active session's visibility scope, or ErrNoSession.
func (m *Manager) Scope() (store.Scope, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.active == nil {
		return store.Scope{}, ErrNoSession
	}
	return m.active.Scope(), nil
}

// Restore reconstructs a session from the persisted marker. The marker is
// trusted as-is; credentials are not re-verified. A marker naming a user
// absent from the directory is stale: it is cleared and no session is
// restored.
func (m *Manager) Restore() (*Session, error) {
	username, err := m.markers.LoadSessionMarker()
	if err != nil {
		return nil, fmt.Errorf("load session marker: %w", err)
	}
	if username == "" {
		return nil, nil
	}

	user, ok := m.dir.Lookup(username)
	if !ok {
		if err := m.markers.ClearSessionMarker(); err != nil {
			return nil, fmt.Errorf("clear stale session marker: %w", err)
		}
		return nil, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = &Session{User: user}
	return m.active, nil
}
