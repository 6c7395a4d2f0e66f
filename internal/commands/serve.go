package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"time"

	"todo/internal/app"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/server"
)

const shutdownTimeout = 5 * time.Second

func init() {
	Register(&ServeCmd{})
}

// ServeCmd runs the HTTP API so a browser front-end can drive the store.
type ServeCmd struct {
	addr string
}

func (c *ServeCmd) Name() string       { return "serve" }
func (c *ServeCmd) Aliases() []string  { return nil }
func (c *ServeCmd) Synopsis() string   { return "Serve the HTTP API" }
func (c *ServeCmd) Usage() string      { return "todo serve [--addr <host:port>]" }
func (c *ServeCmd) NeedsApp() bool     { return true }
func (c *ServeCmd) NeedsSession() bool { return false }

func (c *ServeCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.addr, "addr", "localhost:8080", "")
}

func (c *ServeCmd) Run(ctx context.Context, cfg *config.Config, application *app.App, args []string, out, errOut io.Writer) int {
	srv := server.New(application)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(c.addr)
	}()

	if !cfg.Quiet {
		fmt.Fprintf(errOut, "listening on %s\n", c.addr)
	}

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.StorageError
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(errOut, "error: shutdown: %v\n", err)
		}
	}

	return exitcode.Success
}
