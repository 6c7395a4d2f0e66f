package app_test

import (
	"os"
	"testing"

	"todo/internal/store"
	"todo/internal/testutil"
)

func TestTasksSurviveRestart(t *testing.T) {
	env := testutil.NewEnv(t, testutil.DefaultUsers())
	env.App.Store.Create("Buy milk", "alice")
	env.App.Store.Create("Walk dog", "bob")

	reopened := env.Reopen(t)

	tasks := reopened.App.Store.ListFor(store.AllTasks())
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks after restart, got %d", len(tasks))
	}
	if tasks[0].Name != "Buy milk" || tasks[1].Name != "Walk dog" {
		t.Errorf("expected insertion order preserved across restart, got %v", tasks)
	}
}

func TestSessionSurvivesRestart(t *testing.T) {
	env := testutil.NewEnv(t, testutil.DefaultUsers())
	if _, err := env.App.Gate.AttemptLogin("alice", "wonderland"); err != nil {
		t.Fatalf("login: %v", err)
	}

	reopened := env.Reopen(t)

	sess, ok := reopened.App.Sessions.Current()
	if !ok || sess.User.Username != "alice" {
		t.Error("expected alice's session restored from the marker")
	}
}

func TestStaleSessionDiscardedOnRestart(t *testing.T) {
	env := testutil.NewEnv(t, testutil.DefaultUsers())
	if _, err := env.App.Gate.AttemptLogin("alice", "wonderland"); err != nil {
		t.Fatalf("login: %v", err)
	}

	// Alice is removed from the directory before the restart.
	testutil.WriteUsers(t, env.Cfg, testutil.DefaultUsers()[1:])

	reopened := env.Reopen(t)

	if _, ok := reopened.App.Sessions.Current(); ok {
		t.Error("expected no session for a user missing from the directory")
	}

	// The stale marker is cleared, so a third boot stays logged out too.
	again := reopened.Reopen(t)
	if _, ok := again.App.Sessions.Current(); ok {
		t.Error("expected marker cleared after stale restore")
	}
}

func TestCorruptTaskSlotStartsEmpty(t *testing.T) {
	env := testutil.NewEnv(t, testutil.DefaultUsers())
	env.App.Store.Create("Buy milk", "alice")

	if err := os.WriteFile(env.Cfg.TasksPath(), []byte("{broken"), 0600); err != nil {
		t.Fatalf("corrupt slot: %v", err)
	}

	reopened := env.Reopen(t)

	if reopened.App.LoadWarning == nil {
		t.Error("expected a load warning for the corrupt slot")
	}
	if reopened.App.Store.Len() != 0 {
		t.Errorf("expected empty store after corrupt load, got %d tasks", reopened.App.Store.Len())
	}

	// The next mutation overwrites the bad slot.
	if _, err := reopened.App.Store.Create("Fresh start", "alice"); err != nil {
		t.Fatalf("create: %v", err)
	}
	third := reopened.Reopen(t)
	if third.App.LoadWarning != nil {
		t.Errorf("expected slot repaired, got warning: %v", third.App.LoadWarning)
	}
	if third.App.Store.Len() != 1 {
		t.Errorf("expected 1 task after repair, got %d", third.App.Store.Len())
	}
}
