package cli_test

import (
	"bytes"
	"context"
	"testing"

	"todo/internal/app"
	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/testutil"
)

// testFactory returns an AppFactory that ignores the config and hands back
// the prebuilt test environment.
func testFactory(env *testutil.Env) cli.AppFactory {
	return func(ctx context.Context, cfg *config.Config) (*app.App, error) {
		return env.App, nil
	}
}

func newDispatcher(t *testing.T) (*cli.Dispatcher, *testutil.Env) {
	t.Helper()
	env := testutil.NewEnv(t, testutil.DefaultUsers())
	return cli.NewDispatcher(commands.DefaultRegistry, testFactory(env)), env
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	dispatcher, _ := newDispatcher(t)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"unknowncmd"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	dispatcher, _ := newDispatcher(t)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"--quiet"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	dispatcher, _ := newDispatcher(t)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr, got %q", stderr.String())
	}
	if !bytes.Contains(stdout.Bytes(), []byte("Usage:")) {
		t.Error("expected help output to contain 'Usage:'")
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	dispatcher, _ := newDispatcher(t)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"version"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout.String() != "todo 0.1.0\n" {
		t.Errorf("expected 'todo 0.1.0\\n', got %q", stdout.String())
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	dispatcher, _ := newDispatcher(t)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help", "--unknown"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_SessionRequired(t *testing.T) {
	dispatcher, _ := newDispatcher(t)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), nil, &stdout, &stderr)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	expected := "error: not logged in (run: todo login)\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_LoginThenList(t *testing.T) {
	dispatcher, _ := newDispatcher(t)
	ctx := context.Background()

	var stdout, stderr bytes.Buffer
	if code := dispatcher.Run(ctx, []string{"login", "alice", "wonderland"}, &stdout, &stderr); code != exitcode.Success {
		t.Fatalf("login failed with code %d: %s", code, stderr.String())
	}

	stdout.Reset()
	stderr.Reset()
	if code := dispatcher.Run(ctx, []string{"add", "Buy", "milk"}, &stdout, &stderr); code != exitcode.Success {
		t.Fatalf("add failed with code %d: %s", code, stderr.String())
	}

	stdout.Reset()
	stderr.Reset()
	if code := dispatcher.Run(ctx, nil, &stdout, &stderr); code != exitcode.Success {
		t.Fatalf("list failed with code %d: %s", code, stderr.String())
	}
	expected := "   1  [ ]  Buy milk\n"
	if stdout.String() != expected {
		t.Errorf("expected %q, got %q", expected, stdout.String())
	}
}

func TestDispatcher_FilterFlag(t *testing.T) {
	dispatcher, env := newDispatcher(t)
	ctx := context.Background()

	if _, err := env.App.Gate.AttemptLogin("alice", "wonderland"); err != nil {
		t.Fatalf("login: %v", err)
	}
	task, _ := env.App.Store.Create("Done already", "alice")
	env.App.Store.Create("Still open", "alice")
	env.App.Store.Toggle(task.ID)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(ctx, []string{"list", "--filter", "done"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Fatalf("expected success, got %d: %s", code, stderr.String())
	}
	expected := "   1  [x]  Done already\n"
	if stdout.String() != expected {
		t.Errorf("expected %q, got %q", expected, stdout.String())
	}
}
