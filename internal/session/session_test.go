package session

import (
	"context"
	"fmt"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/julianstephens/bidaya/internal/clock"
	"github.com/julianstephens/bidaya/internal/commands"
	"github.com/julianstephens/bidaya/internal/errors"
	"github.com/julianstephens/bidaya/internal/models"
	"github.com/julianstephens/bidaya/internal/remote"
	"github.com/julianstephens/bidaya/internal/storage"
)

func newLocalSession(t *testing.T) (*Session, *storage.StateStore) {
	t.Helper()
	backend := storage.NewJSONStore(filepath.Join(t.TempDir(), "bidaya.json"))
	if err := backend.Init(); err != nil {
		t.Fatal(err)
	}
	store := storage.NewStateStore(backend, &clock.Fixed{T: time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)})
	return New(store.GetState(context.Background()), LocalCommitter{Store: store}), store
}

func TestExecuteLocalPersists(t *testing.T) {
	ctx := context.Background()
	s, store := newLocalSession(t)

	got, err := s.Execute(ctx, commands.ToggleTaskCmd{ID: "t4"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !got.Tasks[3].Completed {
		t.Error("t4 not completed")
	}
	if !store.GetState(ctx).Tasks[3].Completed {
		t.Error("change not persisted")
	}
}

func TestExecuteCommandErrorLeavesState(t *testing.T) {
	s, _ := newLocalSession(t)
	before := s.State()

	_, err := s.Execute(context.Background(), commands.SetHeartDiseaseLevelCmd{ID: "h1", Level: 12})
	if !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
	if !reflect.DeepEqual(s.State(), before) {
		t.Error("state changed after a rejected command")
	}
}

func TestExecuteRemoteFailureReverts(t *testing.T) {
	ctx := context.Background()
	local, _ := newLocalSession(t)
	mem := remote.NewMemory()
	s := New(local.State(), RemoteCommitter{Adapter: mem, UserID: "u1"})

	if _, err := s.Execute(ctx, commands.TogglePrayerCmd{Prayer: models.Dzuhur, Performed: true}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	committed := s.State()

	mem.Err = fmt.Errorf("503")
	_, err := s.Execute(ctx, commands.ToggleProtocolCmd{ID: "np2"})
	if !errors.Is(err, errors.ErrRemote) {
		t.Fatalf("err = %v, want ErrRemote", err)
	}
	if !reflect.DeepEqual(s.State(), committed) {
		t.Error("state not reverted to the pre-image")
	}
}

func TestResetAdoptsFreshState(t *testing.T) {
	ctx := context.Background()
	s, store := newLocalSession(t)

	if _, err := s.Execute(ctx, commands.ToggleTaskCmd{ID: "t1"}); err != nil {
		t.Fatal(err)
	}
	got, err := s.Reset(ctx, store)
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if got.Tasks[0].Completed || got.Stats().XP != 0 {
		t.Errorf("reset state still has progress: %+v", got.Stats())
	}
	if !reflect.DeepEqual(s.State(), store.GetState(ctx)) {
		t.Error("session and store disagree after reset")
	}
}

func TestExecuteRollsOverAtMidnight(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewJSONStore(filepath.Join(t.TempDir(), "bidaya.json"))
	if err := backend.Init(); err != nil {
		t.Fatal(err)
	}
	c := &clock.Fixed{T: time.Date(2026, 10, 14, 23, 59, 0, 0, time.UTC)}
	store := storage.NewStateStore(backend, c)
	s := New(store.GetState(ctx), LocalCommitter{Store: store}, WithClock(c))

	if _, err := s.Execute(ctx, commands.ToggleTaskCmd{ID: "t1"}); err != nil {
		t.Fatal(err)
	}
	c.Advance(2 * time.Minute)

	got, err := s.Execute(ctx, commands.TogglePrayerCmd{Prayer: models.Subuh, Performed: true})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got.LastResetDate != "2026-10-15" {
		t.Errorf("LastResetDate = %q, want 2026-10-15", got.LastResetDate)
	}
	if got.TodayPrayer == nil || got.TodayPrayer.Date != "2026-10-15" || got.TodayPrayer.Subuh != 1 {
		t.Fatalf("TodayPrayer = %+v, want subuh on 2026-10-15", got.TodayPrayer)
	}
	if got.Tasks[0].Completed {
		t.Error("yesterday's task survived the rollover")
	}
	if got.Stats().Streak != 1 {
		t.Errorf("Streak = %d, want 1", got.Stats().Streak)
	}
	for _, p := range got.PrayerStats {
		if p.Date == "2026-10-14" && p.Subuh != 0 {
			t.Error("post-midnight subuh landed on the previous day")
		}
	}
	if stored := store.GetState(ctx); stored.TodayPrayer.Subuh != 1 {
		t.Error("rolled-over state not persisted")
	}
}

func TestStateRollsOverWithoutCommand(t *testing.T) {
	c := &clock.Fixed{T: time.Date(2026, 10, 14, 23, 59, 0, 0, time.UTC)}
	local, _ := newLocalSession(t)
	s := New(local.State(), LocalCommitter{}, WithClock(c))
	c.Advance(24 * time.Hour)

	if got := s.State().LastResetDate; got != "2026-10-15" {
		t.Errorf("LastResetDate = %q, want 2026-10-15", got)
	}
}

func TestRemoteCommitterWritesLocalAfterPush(t *testing.T) {
	ctx := context.Background()
	local, store := newLocalSession(t)
	mem := remote.NewMemory()
	s := New(local.State(), RemoteCommitter{Adapter: mem, UserID: "u1", Local: store})

	if _, err := s.Execute(ctx, commands.ToggleTaskCmd{ID: "t2"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !store.GetState(ctx).Tasks[1].Completed {
		t.Error("local copy not written after a successful push")
	}

	mem.Err = fmt.Errorf("503")
	if _, err := s.Execute(ctx, commands.ToggleTaskCmd{ID: "t3"}); err == nil {
		t.Fatal("expected push failure")
	}
	if store.GetState(ctx).Tasks[2].Completed {
		t.Error("local copy written despite a failed push")
	}
}
