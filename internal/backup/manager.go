package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/bidaya/internal/clock"
	"github.com/julianstephens/bidaya/internal/constants"
	"github.com/julianstephens/bidaya/internal/errors"
	"github.com/julianstephens/bidaya/internal/logger"
	"github.com/julianstephens/bidaya/internal/storage"
)

const snapshotTimeFormat = "20060102-150405"

// Info describes one snapshot file
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager keeps up to constants.MaxBackups snapshots of the document
type Manager struct {
	dir     string
	backend storage.Backend
	clock   clock.Clock
}

func NewManager(home string, backend storage.Backend, c clock.Clock) *Manager {
	return &Manager{
		dir:     filepath.Join(home, constants.BackupDirName),
		backend: backend,
		clock:   c,
	}
}

func (m *Manager) Dir() string {
	return m.dir
}

// Create snapshots the stored document and rotates old snapshots
func (m *Manager) Create() (string, error) {
	return m.create(false)
}

func (m *Manager) create(skipRotation bool) (string, error) {
	data, err := m.backend.ReadDocument()
	if err != nil {
		if errors.Is(err, errors.ErrNoDocument) {
			return "", fmt.Errorf("nothing to back up: %w", err)
		}
		return "", err
	}
	if err := os.MkdirAll(m.dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	path, err := m.uniquePath()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	if !skipRotation {
		if err := m.rotate(); err != nil {
			logger.Warn("Failed to rotate old backups", "error", err)
		}
	}
	logger.Info("Backup created", "path", path)
	return path, nil
}

func (m *Manager) uniquePath() (string, error) {
	stamp := m.clock.Now().Format(snapshotTimeFormat)
	path := filepath.Join(m.dir, constants.BackupFilePrefix+stamp+constants.BackupFileSuffix)
	for n := 1; fileExists(path); n++ {
		if n > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		path = filepath.Join(m.dir, fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, stamp, n, constants.BackupFileSuffix))
	}
	return path, nil
}

// List returns snapshots newest first
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.dir)
	if os.IsNotExist(err) {
		return []Info{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var out []Info
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
			continue
		}
		stamp := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), constants.BackupFileSuffix)
		counter := 0
		if len(stamp) > len(snapshotTimeFormat) {
			// -N collision suffix
			fmt.Sscanf(stamp[len(snapshotTimeFormat):], "-%d", &counter)
			stamp = stamp[:len(snapshotTimeFormat)]
		}
		ts, err := time.ParseInLocation(snapshotTimeFormat, stamp, m.clock.Now().Location())
		if err != nil {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, Info{
			Path:      filepath.Join(m.dir, name),
			Timestamp: ts.Add(time.Duration(counter) * time.Nanosecond),
			Size:      info.Size(),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// Restore replaces the stored document with a snapshot after saving the
// current document as a snapshot of its own.
func (m *Manager) Restore(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read backup: %w", err)
	}
	if err := Validate(data); err != nil {
		return fmt.Errorf("backup file is invalid: %w", err)
	}

	if _, err := m.backend.ReadDocument(); err == nil {
		current, err := m.create(true)
		if err != nil {
			return fmt.Errorf("failed to back up current state before restore: %w", err)
		}
		logger.Info("Saved current state before restore", "path", current)
	}

	if err := m.backend.WriteDocument(data); err != nil {
		return fmt.Errorf("failed to restore backup: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
