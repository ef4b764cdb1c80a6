package migration

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func scripts(files map[string]string) fstest.MapFS {
	m := fstest.MapFS{}
	for name, body := range files {
		m[name] = &fstest.MapFile{Data: []byte(body)}
	}
	return m
}

func TestApplyFromScratch(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	r := NewRunner(db, scripts(map[string]string{
		"001_init.sql":  "CREATE TABLE documents (key TEXT PRIMARY KEY, body TEXT);",
		"002_index.sql": "CREATE INDEX idx_body ON documents(body);",
		"README.md":     "ignored",
	}), SQLite)

	n, err := r.Apply(ctx)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if n != 2 {
		t.Errorf("applied = %d, want 2", n)
	}
	v, err := r.CurrentVersion(ctx)
	if err != nil || v != 2 {
		t.Errorf("CurrentVersion = %d, %v", v, err)
	}

	n, err = r.Apply(ctx)
	if err != nil || n != 0 {
		t.Errorf("second Apply = %d, %v; want no-op", n, err)
	}
}

func TestApplyRollsBackFailedScript(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	r := NewRunner(db, scripts(map[string]string{
		"001_init.sql":   "CREATE TABLE documents (key TEXT);",
		"002_broken.sql": "CREATE TABLE nope (",
	}), SQLite)

	n, err := r.Apply(ctx)
	if err == nil {
		t.Fatal("expected error from broken script")
	}
	if n != 1 {
		t.Errorf("applied = %d, want 1", n)
	}
	if v, _ := r.CurrentVersion(ctx); v != 1 {
		t.Errorf("version = %d, want 1", v)
	}
}

func TestValidateNewerDatabase(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	r := NewRunner(db, scripts(map[string]string{"001_init.sql": "SELECT 1;"}), SQLite)
	if err := r.ensureVersionTable(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (7)"); err != nil {
		t.Fatal(err)
	}

	err := r.Validate(ctx)
	if err == nil || !strings.Contains(err.Error(), "newer than supported") {
		t.Errorf("Validate = %v, want newer-version error", err)
	}
}

func TestScriptsValidation(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
	}{
		{"no underscore", map[string]string{"001.sql": ""}},
		{"bad number", map[string]string{"abc_init.sql": ""}},
		{"zero version", map[string]string{"000_init.sql": ""}},
		{"duplicate", map[string]string{"001_a.sql": "", "1_b.sql": ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRunner(nil, scripts(tt.files), SQLite)
			if _, err := r.Scripts(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLatestVersion(t *testing.T) {
	r := NewRunner(nil, scripts(map[string]string{"003_c.sql": "", "001_a.sql": ""}), SQLite)
	v, err := r.LatestVersion()
	if err != nil || v != 3 {
		t.Errorf("LatestVersion = %d, %v; want 3", v, err)
	}
}
