package remote

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/julianstephens/bidaya/internal/errors"
	"github.com/julianstephens/bidaya/internal/seed"
)

func TestMemoryLastWriteWins(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if _, err := m.Pull(ctx, "u1"); !errors.Is(err, errors.ErrNoDocument) {
		t.Fatalf("Pull = %v, want ErrNoDocument", err)
	}

	s := seed.Default(time.Now())
	if err := m.Push(ctx, "u1", s); err != nil {
		t.Fatal(err)
	}
	first, _ := m.Pull(ctx, "u1")

	s.Tasks[0].Completed = true
	if err := m.Push(ctx, "u1", s); err != nil {
		t.Fatal(err)
	}
	second, _ := m.Pull(ctx, "u1")
	if string(first) == string(second) {
		t.Error("second push did not replace the document")
	}
}

func TestMemoryInjectedFailure(t *testing.T) {
	m := NewMemory()
	m.Err = fmt.Errorf("offline")
	err := m.Push(context.Background(), "u1", seed.Default(time.Now()))
	if !errors.Is(err, errors.ErrRemote) {
		t.Errorf("err = %v, want ErrRemote", err)
	}
}
