// Package auth is the thin authentication boundary in front of the session
// manager.
package auth

import "todo/internal/session"

// Gate exposes login and logout to the outer adapters. It adds no policy of
// its own: no rate limiting, no lockout, no hashing. Credentials are
// compared exactly as loaded from the directory.
type Gate struct {
	sessions *session.Manager
}

// NewGate creates a gate over the given session manager.
func NewGate(sessions *session.Manager) *Gate {
	return &Gate{sessions: sessions}
}

// AttemptLogin validates credentials and activates a session.
func (g *Gate) AttemptLogin(username, password string) (*session.Session, error) {
	return g.sessions.Login(username, password)
}

// AttemptLogout ends the active session. Safe to call when logged out.
func (g *Gate) AttemptLogout() error {
	return g.sessions.Logout()
}
