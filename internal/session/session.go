// Package session owns the in-memory state of one running process and
// applies commands to it optimistically.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/julianstephens/bidaya/internal/clock"
	"github.com/julianstephens/bidaya/internal/commands"
	"github.com/julianstephens/bidaya/internal/logger"
	"github.com/julianstephens/bidaya/internal/models"
	"github.com/julianstephens/bidaya/internal/remote"
	"github.com/julianstephens/bidaya/internal/rollover"
	"github.com/julianstephens/bidaya/internal/storage"
)

// Committer makes a new state durable. A failed commit reverts the
// session to the state it had before the command.
type Committer interface {
	Commit(ctx context.Context, state models.AppState) error
}

// LocalCommitter writes to local storage. Remote pushes happen in the
// background and never fail a commit.
type LocalCommitter struct {
	Store *storage.StateStore
}

func (c LocalCommitter) Commit(ctx context.Context, state models.AppState) error {
	return c.Store.SaveState(ctx, state)
}

// RemoteCommitter writes straight to the account store on the hot path.
// Local, when set, receives the document only after the push succeeds.
type RemoteCommitter struct {
	Adapter remote.Adapter
	UserID  string
	Local   *storage.StateStore
}

func (c RemoteCommitter) Commit(ctx context.Context, state models.AppState) error {
	if err := c.Adapter.Push(ctx, c.UserID, state); err != nil {
		return err
	}
	if c.Local == nil {
		return nil
	}
	return c.Local.Write(state)
}

type Session struct {
	mu        sync.Mutex
	state     models.AppState
	committer Committer
	clock     clock.Clock
}

// Option configures a Session
type Option func(*Session)

// WithClock rolls the session over to a new day whenever c's date moves
// past the state's lastResetDate.
func WithClock(c clock.Clock) Option {
	return func(s *Session) {
		s.clock = c
	}
}

func New(initial models.AppState, committer Committer, opts ...Option) *Session {
	s := &Session{state: initial, committer: committer}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a copy of the current state
func (s *Session) State() models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollLocked()
	return s.state.Clone()
}

// rollLocked applies the daily reset in memory when the date has changed.
// The next commit persists it. Callers hold s.mu.
func (s *Session) rollLocked() {
	if s.clock == nil {
		return
	}
	today := clock.Today(s.clock)
	if s.state.LastResetDate == today {
		return
	}
	logger.Debug("Day changed, rolling session over", "from", s.state.LastResetDate, "to", today)
	s.state = rollover.Initialize(s.state, today)
}

// Execute applies cmd and commits the result. On a command error nothing
// changes; on a commit error the pre-image is restored.
func (s *Session) Execute(ctx context.Context, cmd commands.Command) (models.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollLocked()

	before := s.state
	next, err := cmd.Apply(before)
	if err != nil {
		return before.Clone(), err
	}

	s.state = next
	if err := s.committer.Commit(ctx, next); err != nil {
		s.state = before
		logger.Warn("Commit failed, reverted", "command", cmd.Name(), "error", err)
		return before.Clone(), fmt.Errorf("%s: %w", cmd.Name(), err)
	}
	logger.Debug("Command applied", "command", cmd.Name())
	return next.Clone(), nil
}

// Resetter replaces the stored document with a fresh seed
type Resetter interface {
	ResetState(ctx context.Context) (models.AppState, error)
}

// Reset delegates to r and adopts the state it returns
func (s *Session) Reset(ctx context.Context, r Resetter) (models.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fresh, err := r.ResetState(ctx)
	if err != nil {
		return s.state.Clone(), fmt.Errorf("reset: %w", err)
	}
	s.state = fresh
	return fresh.Clone(), nil
}

// Replace swaps in a whole state, as after a reset or a pull
func (s *Session) Replace(state models.AppState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}
