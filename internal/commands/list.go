package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"todo/internal/app"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/store"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `todo` (no args) and `todo list`.
type ListCmd struct {
	filter string
}

// SetFilter sets the filter policy (for testing).
func (c *ListCmd) SetFilter(filter string) {
	c.filter = filter
}

func (c *ListCmd) Name() string       { return "list" }
func (c *ListCmd) Aliases() []string  { return []string{"ls"} }
func (c *ListCmd) Synopsis() string   { return "List visible tasks" }
func (c *ListCmd) Usage() string      { return "todo list [--filter pending|done|alpha]" }
func (c *ListCmd) NeedsApp() bool     { return true }
func (c *ListCmd) NeedsSession() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.filter, "filter", "", "")
	fs.StringVar(&c.filter, "f", "", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, application *app.App, args []string, out, errOut io.Writer) int {
	filter, err := store.ParseFilter(c.filter)
	if err != nil {
		if errors.Is(err, store.ErrUnknownFilter) {
			fmt.Fprintf(errOut, "error: invalid filter: %s (want pending, done, or alpha)\n", c.filter)
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.UserError
	}

	scope, err := application.Sessions.Scope()
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.AuthError
	}

	tasks := application.Store.Filtered(scope, filter)

	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	// Admins see everyone's tasks, so include the owner column.
	for i, task := range tasks {
		if scope.All() {
			output.FormatTaskWithOwner(out, i+1, task)
		} else {
			output.FormatTask(out, i+1, task)
		}
	}

	return exitcode.Success
}
