package server

// LoginRequest carries credentials for POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateTaskRequest carries a new task for POST /tasks. Owner is optional
// and only honored for admin sessions.
type CreateTaskRequest struct {
	Name  string `json:"name"`
	Owner string `json:"owner,omitempty"`
}

// SessionResponse describes the active session.
type SessionResponse struct {
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
}

// UserResponse is a directory entry with the password withheld.
type UserResponse struct {
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
}

// ErrorResponse carries a user-facing error message.
type ErrorResponse struct {
	Message string `json:"message"`
}
