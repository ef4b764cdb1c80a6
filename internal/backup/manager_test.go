package backup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/bidaya/internal/clock"
	"github.com/julianstephens/bidaya/internal/commands"
	"github.com/julianstephens/bidaya/internal/constants"
	"github.com/julianstephens/bidaya/internal/storage"
)

func setupManager(t *testing.T) (*Manager, *storage.StateStore, *clock.Fixed) {
	t.Helper()
	home := t.TempDir()
	backend := storage.NewJSONStore(filepath.Join(home, constants.JSONFileName))
	if err := backend.Init(); err != nil {
		t.Fatal(err)
	}
	c := &clock.Fixed{T: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)}
	store := storage.NewStateStore(backend, c)
	if err := store.SaveState(context.Background(), store.GetState(context.Background())); err != nil {
		t.Fatal(err)
	}
	return NewManager(home, backend, c), store, c
}

func TestCreateWithoutDocument(t *testing.T) {
	home := t.TempDir()
	backend := storage.NewJSONStore(filepath.Join(home, constants.JSONFileName))
	m := NewManager(home, backend, &clock.Fixed{T: time.Now()})
	if _, err := m.Create(); err == nil {
		t.Error("expected error when no document exists")
	}
}

func TestCreateAndList(t *testing.T) {
	m, _, c := setupManager(t)

	first, err := m.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	// same second collides and gets a counter
	second, err := m.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first == second {
		t.Fatal("two backups share a path")
	}
	c.Advance(time.Minute)
	third, _ := m.Create()

	list, err := m.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("List = %d entries, want 3", len(list))
	}
	if list[0].Path != third || list[1].Path != second || list[2].Path != first {
		t.Errorf("order = %s, %s, %s", filepath.Base(list[0].Path), filepath.Base(list[1].Path), filepath.Base(list[2].Path))
	}
}

func TestRotation(t *testing.T) {
	m, _, c := setupManager(t)
	for i := 0; i < constants.MaxBackups+3; i++ {
		if _, err := m.Create(); err != nil {
			t.Fatal(err)
		}
		c.Advance(time.Hour)
	}
	list, err := m.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != constants.MaxBackups {
		t.Errorf("kept %d backups, want %d", len(list), constants.MaxBackups)
	}
}

func TestRestore(t *testing.T) {
	ctx := context.Background()
	m, store, c := setupManager(t)

	path, err := m.Create()
	if err != nil {
		t.Fatal(err)
	}

	changed, _ := commands.ToggleTask(store.GetState(ctx), "t1")
	if err := store.SaveState(ctx, changed); err != nil {
		t.Fatal(err)
	}
	c.Advance(time.Second)

	if err := m.Restore(path); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if store.GetState(ctx).Tasks[0].Completed {
		t.Error("restore did not bring back the snapshot")
	}
	list, _ := m.List()
	if len(list) != 2 {
		t.Errorf("List = %d entries, want 2 (pre-restore snapshot)", len(list))
	}
}

func TestRestoreRejectsInvalidFile(t *testing.T) {
	m, _, _ := setupManager(t)
	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte(`{"tasks": []}`), 0600); err != nil {
		t.Fatal(err)
	}
	if err := m.Restore(bad); err == nil {
		t.Error("expected error for an incomplete backup")
	}
}
