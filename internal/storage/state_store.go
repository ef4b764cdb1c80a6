// Package storage persists the state document locally and mirrors saves
// to the remote store when a session is active.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/julianstephens/bidaya/internal/clock"
	"github.com/julianstephens/bidaya/internal/errors"
	"github.com/julianstephens/bidaya/internal/logger"
	"github.com/julianstephens/bidaya/internal/migration"
	"github.com/julianstephens/bidaya/internal/models"
	"github.com/julianstephens/bidaya/internal/rollover"
	"github.com/julianstephens/bidaya/internal/seed"
)

// PushTimeout bounds a single background push
const PushTimeout = 30 * time.Second

// Pusher uploads a full state document for a user
type Pusher interface {
	Push(ctx context.Context, userID string, state models.AppState) error
}

// SessionFunc returns the signed-in user id, or false when signed out
type SessionFunc func() (string, bool)

// NotifyFunc reports a non-blocking failure to the user
type NotifyFunc func(msg string)

type Option func(*StateStore)

// WithRemote mirrors every save to p while session reports a user
func WithRemote(p Pusher, session SessionFunc) Option {
	return func(s *StateStore) {
		s.remote = p
		s.session = session
	}
}

func WithNotifier(fn NotifyFunc) Option {
	return func(s *StateStore) {
		s.notify = fn
	}
}

// StateStore reads, repairs, and writes the state document
type StateStore struct {
	backend Backend
	clock   clock.Clock
	remote  Pusher
	session SessionFunc
	notify  NotifyFunc
	pending sync.WaitGroup
}

func NewStateStore(backend Backend, c clock.Clock, opts ...Option) *StateStore {
	s := &StateStore{backend: backend, clock: c}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Backend returns the durable store behind s
func (s *StateStore) Backend() Backend {
	return s.backend
}

// Now is the current time of the store's clock
func (s *StateStore) Now() time.Time {
	return s.clock.Now()
}

// Today is the current local date of the store's clock
func (s *StateStore) Today() string {
	return clock.Today(s.clock)
}

// GetState returns the current state with migration and rollover applied.
// A missing or unreadable document yields a fresh seed; it never fails.
func (s *StateStore) GetState(ctx context.Context) models.AppState {
	base := seed.Default(s.clock.Now())
	today := s.Today()

	data, err := s.backend.ReadDocument()
	if err != nil {
		if !errors.Is(err, errors.ErrNoDocument) {
			logger.Error("Failed to read state, using defaults", "error", err)
		}
		return rollover.Initialize(base, today)
	}

	state, err := migration.Decode(data, base)
	if err != nil {
		logger.Error("Failed to parse state, using defaults", "error", err)
		return rollover.Initialize(base, today)
	}
	return rollover.Initialize(state, today)
}

// SaveState writes the full document locally. When a remote session is
// active the document is also pushed in the background; a push failure is
// logged and reported through the notifier but never returned.
func (s *StateStore) SaveState(ctx context.Context, state models.AppState) error {
	if err := s.Write(state); err != nil {
		return err
	}
	if s.remote == nil || s.session == nil {
		return nil
	}
	userID, ok := s.session()
	if !ok {
		return nil
	}

	snapshot := state.Clone()
	pushCtx := context.WithoutCancel(ctx)
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		ctx, cancel := context.WithTimeout(pushCtx, PushTimeout)
		defer cancel()
		if err := s.remote.Push(ctx, userID, snapshot); err != nil {
			logger.Warn("Background sync failed", "user", userID, "error", err)
			if s.notify != nil {
				s.notify(fmt.Sprintf("Sync failed: %v", err))
			}
			return
		}
		logger.Debug("Background sync completed", "user", userID)
	}()
	return nil
}

// Write persists state locally only
func (s *StateStore) Write(state models.AppState) error {
	state.SchemaVersion = seed.SchemaVersion
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if err := s.backend.WriteDocument(data); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// ResetState replaces the document with a fresh seed and returns it
// rolled over for today. This is a full reset: heart levels, XP, level,
// streak and lifetime counters all go back to their seed values, the same
// as a first launch. Callers that want to keep history snapshot first
// (see backup.Manager).
func (s *StateStore) ResetState(ctx context.Context) (models.AppState, error) {
	fresh := rollover.Initialize(seed.Default(s.clock.Now()), s.Today())
	if err := s.SaveState(ctx, fresh); err != nil {
		return fresh, err
	}
	logger.Info("State reset to defaults", "date", fresh.LastResetDate)
	return fresh, nil
}

// Wait blocks until every background push has finished
func (s *StateStore) Wait() {
	s.pending.Wait()
}
