package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/bidaya/internal/errors"
)

// JSONStore keeps the document in a single file
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}

func (s *JSONStore) Load() error {
	if _, err := os.Stat(filepath.Dir(s.path)); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'bidaya init' first")
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) ReadDocument() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, errors.ErrNoDocument
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}
	return data, nil
}

// WriteDocument writes through a temporary file and renames it into place
func (s *JSONStore) WriteDocument(data []byte) error {
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
