package storage_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"todo/internal/storage"
	"todo/internal/store"
)

func newSlots(t *testing.T) (*storage.Slots, string) {
	t.Helper()
	dir := t.TempDir()
	return storage.New(filepath.Join(dir, "tasks.json"), filepath.Join(dir, "session")), dir
}

func TestLoadTasks_AbsentSlot(t *testing.T) {
	slots, _ := newSlots(t)

	tasks, err := slots.LoadTasks()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty sequence, got %d tasks", len(tasks))
	}
}

func TestSaveLoadTasks(t *testing.T) {
	slots, _ := newSlots(t)

	want := []store.Task{
		{ID: "t1", Name: "Buy milk", Status: store.StatusPending, Owner: "alice"},
		{ID: "t2", Name: "Call mom", Status: store.StatusDone, Owner: "bob"},
	}
	if err := slots.SaveTasks(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := slots.LoadTasks()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("roundtrip mismatch:\ngot  %v\nwant %v", got, want)
	}
}

func TestSaveTasks_OverwritesPriorValue(t *testing.T) {
	slots, _ := newSlots(t)

	slots.SaveTasks([]store.Task{{ID: "t1", Name: "old", Status: store.StatusPending, Owner: "alice"}})
	if err := slots.SaveTasks(nil); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := slots.LoadTasks()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected overwritten empty slot, got %v", got)
	}
}

func TestLoadTasks_CorruptSlot(t *testing.T) {
	dir := t.TempDir()
	tasksPath := filepath.Join(dir, "tasks.json")
	slots := storage.New(tasksPath, filepath.Join(dir, "session"))

	if err := os.WriteFile(tasksPath, []byte("{not json"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := slots.LoadTasks(); !errors.Is(err, storage.ErrCorruptState) {
		t.Errorf("expected ErrCorruptState, got %v", err)
	}
}

func TestSessionMarker_Roundtrip(t *testing.T) {
	slots, _ := newSlots(t)

	if err := slots.SaveSessionMarker("alice"); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := slots.LoadSessionMarker()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != "alice" {
		t.Errorf("expected alice, got %q", got)
	}
}

func TestSessionMarker_Absent(t *testing.T) {
	slots, _ := newSlots(t)

	got, err := slots.LoadSessionMarker()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty marker, got %q", got)
	}
}

func TestClearSessionMarker(t *testing.T) {
	slots, _ := newSlots(t)

	slots.SaveSessionMarker("alice")
	if err := slots.ClearSessionMarker(); err != nil {
		t.Fatalf("clear: %v", err)
	}

	got, _ := slots.LoadSessionMarker()
	if got != "" {
		t.Errorf("expected cleared marker, got %q", got)
	}

	// Clearing again is a no-op.
	if err := slots.ClearSessionMarker(); err != nil {
		t.Errorf("clear absent marker: %v", err)
	}
}
