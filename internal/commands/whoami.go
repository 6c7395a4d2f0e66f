package commands

import (
	"context"
	"flag"
	"io"

	"todo/internal/app"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
)

func init() {
	Register(&WhoamiCmd{})
	Register(&UsersCmd{})
}

// WhoamiCmd prints the active session's username.
type WhoamiCmd struct{}

func (c *WhoamiCmd) Name() string       { return "whoami" }
func (c *WhoamiCmd) Aliases() []string  { return nil }
func (c *WhoamiCmd) Synopsis() string   { return "Print the logged-in user" }
func (c *WhoamiCmd) Usage() string      { return "todo whoami" }
func (c *WhoamiCmd) NeedsApp() bool     { return true }
func (c *WhoamiCmd) NeedsSession() bool { return true }

func (c *WhoamiCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *WhoamiCmd) Run(ctx context.Context, cfg *config.Config, application *app.App, args []string, out, errOut io.Writer) int {
	sess, _ := application.Sessions.Current()
	output.FormatUser(out, sess.User)
	return exitcode.Success
}

// UsersCmd prints the user directory in load order.
type UsersCmd struct{}

func (c *UsersCmd) Name() string       { return "users" }
func (c *UsersCmd) Aliases() []string  { return nil }
func (c *UsersCmd) Synopsis() string   { return "Print all directory users" }
func (c *UsersCmd) Usage() string      { return "todo users" }
func (c *UsersCmd) NeedsApp() bool     { return true }
func (c *UsersCmd) NeedsSession() bool { return true }

func (c *UsersCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UsersCmd) Run(ctx context.Context, cfg *config.Config, application *app.App, args []string, out, errOut io.Writer) int {
	for _, user := range application.Directory.Users() {
		output.FormatUser(out, user)
	}
	return exitcode.Success
}
