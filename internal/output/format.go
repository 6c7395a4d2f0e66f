// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/directory"
	"todo/internal/store"
)

// FormatTask formats a numbered task line.
// Format: "{N:>4}  [{x| }]  {NAME}\n"
func FormatTask(w io.Writer, num int, task store.Task) {
	fmt.Fprintf(w, "%4d  [%s]  %s\n", num, statusMark(task.Status), normalizeName(task.Name))
}

// FormatTaskWithOwner formats a numbered task line including the owner.
// Used for the admin scope, where tasks from every user are visible.
func FormatTaskWithOwner(w io.Writer, num int, task store.Task) {
	fmt.Fprintf(w, "%4d  [%s]  %-30s  %s\n",
		num, statusMark(task.Status), normalizeName(task.Name), task.Owner)
}

// FormatUser formats a directory entry for the users command.
func FormatUser(w io.Writer, user directory.User) {
	name := user.Username
	if user.Admin {
		name += " [admin]"
	}
	fmt.Fprintln(w, name)
}

func statusMark(s store.Status) string {
	if s == store.StatusDone {
		return "x"
	}
	return " "
}

// normalizeName normalizes a task name for display.
// - Empty or whitespace-only names become "(untitled)"
// - Newlines are replaced with spaces
func normalizeName(name string) string {
	name = strings.ReplaceAll(name, "\r", " ")
	name = strings.ReplaceAll(name, "\n", " ")

	if strings.TrimSpace(name) == "" {
		return "(untitled)"
	}
	return name
}
