// Package remote defines the account store that mirrors the local state
// document. Writes are last-write-wins upserts of the whole document.
package remote

import (
	"context"

	"github.com/julianstephens/bidaya/internal/models"
)

// Adapter stores one document per user
type Adapter interface {
	// Push upserts the full document for userID
	Push(ctx context.Context, userID string, state models.AppState) error
	// Pull returns the raw stored document, or errors.ErrNoDocument
	Pull(ctx context.Context, userID string) ([]byte, error)
	Close() error
}
