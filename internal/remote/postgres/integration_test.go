package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/bidaya/internal/errors"
	"github.com/julianstephens/bidaya/internal/migration"
	"github.com/julianstephens/bidaya/internal/seed"
)

// TestStore_Integration runs against a real database.
// Example: BIDAYA_TEST_POSTGRES_DSN="postgres://bidaya@localhost:5432/bidaya_test?sslmode=disable"
func TestStore_Integration(t *testing.T) {
	connStr := os.Getenv("BIDAYA_TEST_POSTGRES_DSN")
	if connStr == "" {
		t.Skip("BIDAYA_TEST_POSTGRES_DSN not set, skipping PostgreSQL integration test")
	}

	ctx := context.Background()
	store := New(connStr)
	if err := store.Open(ctx); err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	userID := uuid.NewString()

	if _, err := store.Pull(ctx, userID); !errors.Is(err, errors.ErrNoDocument) {
		t.Fatalf("Pull before push = %v, want ErrNoDocument", err)
	}

	now := time.Now()
	state := seed.Default(now)
	state.Tasks[0].Completed = true
	if err := store.Push(ctx, userID, state); err != nil {
		t.Fatalf("Push: %v", err)
	}
	state.Tasks[1].Completed = true
	if err := store.Push(ctx, userID, state); err != nil {
		t.Fatalf("second Push: %v", err)
	}

	data, err := store.Pull(ctx, userID)
	if err != nil {
		t.Fatalf("Pull: %v", err)
	}
	got, err := migration.Decode(data, seed.Default(now))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !got.Tasks[0].Completed || !got.Tasks[1].Completed {
		t.Error("last write did not win")
	}
}
