// Package store owns the authoritative task collection.
package store

// Status is the completion state of a task.
type Status string

const (
	// StatusPending marks a task that is not done yet.
	StatusPending Status = "pending"

	// StatusDone marks a completed task.
	StatusDone Status = "done"
)

// Toggled returns the opposite status.
func (s Status) Toggled() Status {
	if s == StatusDone {
		return StatusPending
	}
	return StatusDone
}

// Task is a single to-do item. Only these four fields are persisted.
type Task struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status Status `json:"status"`
	Owner  string `json:"owner"`
}

// Scope is the set of tasks a session may view: everything (admin) or a
// single owner's tasks.
type Scope struct {
	all   bool
	owner string
}

// AllTasks returns the admin scope covering every task.
func AllTasks() Scope {
	return Scope{all: true}
}

// OwnedBy returns the scope covering a single owner's tasks.
func OwnedBy(username string) Scope {
	return Scope{owner: username}
}

// All reports whether the scope covers every task.
func (s Scope) All() bool { return s.all }

// Owner returns the owning username for a non-admin scope.
func (s Scope) Owner() string { return s.owner }

// Matches reports whether a task is visible under the scope.
func (s Scope) Matches(t Task) bool {
	return s.all || t.Owner == s.owner
}

func (s Scope) String() string {
	if s.all {
		return "all"
	}
	return s.owner
}
