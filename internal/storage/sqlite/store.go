// Package sqlite stores the state document in a SQLite database
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/bidaya/internal/constants"
	"github.com/julianstephens/bidaya/internal/errors"
	"github.com/julianstephens/bidaya/internal/migration"
	"github.com/julianstephens/bidaya/migrations"
)

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := s.open(); err != nil {
		return err
	}
	if _, err := s.Migrations().Apply(context.Background()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'bidaya init' first")
	}
	if err := s.open(); err != nil {
		return err
	}
	// A release may have added scripts since the last init
	if _, err := s.Migrations().Apply(context.Background()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *Store) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

// Migrations returns the schema runner bound to the open connection
func (s *Store) Migrations() *migration.Runner {
	// The sub path is a compile-time constant of the embedded FS
	sub, _ := fs.Sub(migrations.FS, "sqlite")
	return migration.NewRunner(s.db, sub, migration.SQLite)
}

func (s *Store) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *Store) ReadDocument() ([]byte, error) {
	var body string
	err := s.db.QueryRow("SELECT body FROM documents WHERE key = ?", constants.StorageKey).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrNoDocument
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state document: %w", err)
	}
	return []byte(body), nil
}

func (s *Store) WriteDocument(data []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO documents (key, body, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		constants.StorageKey, string(data), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to write state document: %w", err)
	}
	return nil
}

func (s *Store) GetConfigPath() string {
	return s.path
}

// GetDB returns the underlying connection, nil before Init or Load
func (s *Store) GetDB() *sql.DB {
	return s.db
}
