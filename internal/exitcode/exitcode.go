// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, empty name, unknown task).
	UserError = 1

	// AuthError indicates an auth error (bad credentials, not logged in).
	AuthError = 2

	// StorageError indicates a persistence error (unwritable or corrupt slot).
	StorageError = 3
)
