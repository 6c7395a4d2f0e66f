package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/app"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/store"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	owner string
}

// SetOwner sets the assignment target (for testing).
func (c *AddCmd) SetOwner(owner string) {
	c.owner = owner
}

func (c *AddCmd) Name() string       { return "add" }
func (c *AddCmd) Aliases() []string  { return []string{"create"} }
func (c *AddCmd) Synopsis() string   { return "Create a task" }
func (c *AddCmd) Usage() string      { return "todo add [--for <username>] <name...>" }
func (c *AddCmd) NeedsApp() bool     { return true }
func (c *AddCmd) NeedsSession() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.owner, "for", "", "")
	fs.StringVar(&c.owner, "f", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, application *app.App, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task name required")
		return exitcode.UserError
	}

	name := strings.Join(args, " ")
	if strings.TrimSpace(name) == "" {
		fmt.Fprintln(errOut, "error: task name required")
		return exitcode.UserError
	}

	sess, _ := application.Sessions.Current()

	// Only admins may assign tasks to someone else.
	owner := sess.User.Username
	if c.owner != "" && c.owner != sess.User.Username {
		if !sess.User.Admin {
			fmt.Fprintln(errOut, "error: only an admin can assign tasks to another user")
			return exitcode.UserError
		}
		owner = c.owner
	}

	if _, err := application.Store.Create(name, owner); err != nil {
		switch {
		case errors.Is(err, store.ErrEmptyName):
			fmt.Fprintln(errOut, "error: task name required")
			return exitcode.UserError
		case errors.Is(err, store.ErrUnknownOwner):
			fmt.Fprintf(errOut, "error: unknown user: %s\n", owner)
			return exitcode.UserError
		default:
			fmt.Fprintf(errOut, "error: storage error: %v\n", err)
			return exitcode.StorageError
		}
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
