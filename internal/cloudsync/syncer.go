// Package cloudsync reconciles the local document with the remote account
// store at sign-in and on explicit push or pull.
package cloudsync

import (
	"context"
	"fmt"

	"github.com/julianstephens/bidaya/internal/errors"
	"github.com/julianstephens/bidaya/internal/logger"
	"github.com/julianstephens/bidaya/internal/migration"
	"github.com/julianstephens/bidaya/internal/models"
	"github.com/julianstephens/bidaya/internal/remote"
	"github.com/julianstephens/bidaya/internal/rollover"
	"github.com/julianstephens/bidaya/internal/seed"
	"github.com/julianstephens/bidaya/internal/storage"
)

// Outcome tells which side won a sign-in
type Outcome string

const (
	Pulled Outcome = "pulled"
	Pushed Outcome = "pushed"
)

type Syncer struct {
	remote remote.Adapter
	store  *storage.StateStore
}

func New(adapter remote.Adapter, store *storage.StateStore) *Syncer {
	return &Syncer{remote: adapter, store: store}
}

// SignIn pulls the user's remote document. When one exists it replaces
// local storage; otherwise the local state is uploaded as the first copy.
func (s *Syncer) SignIn(ctx context.Context, userID string, local models.AppState) (models.AppState, Outcome, error) {
	state, err := s.Pull(ctx, userID)
	switch {
	case err == nil:
		logger.Info("Remote state found, replacing local", "user", userID)
		return state, Pulled, nil
	case errors.Is(err, errors.ErrNoDocument):
		if err := s.Push(ctx, userID, local); err != nil {
			return local, "", err
		}
		logger.Info("No remote state, uploaded local", "user", userID)
		return local, Pushed, nil
	default:
		return local, "", err
	}
}

// Pull fetches the remote document, upgrades and rolls it over, and
// overwrites local storage with it.
func (s *Syncer) Pull(ctx context.Context, userID string) (models.AppState, error) {
	data, err := s.remote.Pull(ctx, userID)
	if err != nil {
		return models.AppState{}, err
	}
	state, err := migration.Decode(data, seed.Default(s.store.Now()))
	if err != nil {
		return models.AppState{}, fmt.Errorf("%w: remote document: %v", errors.ErrRemote, err)
	}
	state = rollover.Initialize(state, s.store.Today())
	if err := s.store.Write(state); err != nil {
		return models.AppState{}, err
	}
	return state, nil
}

// Push uploads state synchronously
func (s *Syncer) Push(ctx context.Context, userID string, state models.AppState) error {
	if err := s.remote.Push(ctx, userID, state); err != nil {
		return err
	}
	logger.Debug("Pushed state", "user", userID)
	return nil
}
