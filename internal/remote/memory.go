package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/julianstephens/bidaya/internal/errors"
	"github.com/julianstephens/bidaya/internal/models"
)

// Memory is an in-process Adapter
type Memory struct {
	mu   sync.RWMutex
	docs map[string][]byte
	// Err, when set, fails every call with ErrRemote
	Err error
}

func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

func (m *Memory) Push(ctx context.Context, userID string, state models.AppState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return fmt.Errorf("%w: %v", errors.ErrRemote, m.Err)
	}
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrRemote, err)
	}
	m.docs[userID] = data
	return nil
}

// PushRaw stores data as-is, for seeding legacy documents
func (m *Memory) PushRaw(userID string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[userID] = append([]byte(nil), data...)
}

func (m *Memory) Pull(ctx context.Context, userID string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrRemote, m.Err)
	}
	data, ok := m.docs[userID]
	if !ok {
		return nil, errors.ErrNoDocument
	}
	return append([]byte(nil), data...), nil
}

func (m *Memory) Close() error {
	return nil
}
