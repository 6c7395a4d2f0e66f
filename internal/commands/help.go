package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/app"
	"todo/internal/config"
	"todo/internal/exitcode"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "todo help" }
func (c *HelpCmd) NeedsApp() bool     { return false }
func (c *HelpCmd) NeedsSession() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, application *app.App, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  todo                                        List visible tasks
  todo list [common flags] [--filter pending|done|alpha]
  todo add [common flags] [--for <username>] <name...>
  todo done [common flags] <n>
  todo rm [common flags] <n>
  todo login [common flags] <username> <password>
  todo logout [common flags]
  todo whoami [common flags]
  todo users [common flags]
  todo serve [common flags] [--addr <host:port>]
  todo help
  todo version

Common flags:
  --config <dir>   Override config directory
  --users <src>    Load the user directory from a file path or http(s) URL
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
