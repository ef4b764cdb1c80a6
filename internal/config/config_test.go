package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/bidaya/internal/constants"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"BIDAYA_HOME", "BIDAYA_BACKEND", "BIDAYA_TIMEZONE", "BIDAYA_DEBUG", "BIDAYA_REMOTE_DSN", "BIDAYA_LATITUDE", "BIDAYA_LONGITUDE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Home != constants.DefaultHome {
		t.Errorf("Home = %q", cfg.Home)
	}
	if cfg.Backend != constants.BackendJSON {
		t.Errorf("Backend = %q", cfg.Backend)
	}
	if cfg.Latitude != constants.FallbackLatitude || cfg.Longitude != constants.FallbackLongitude {
		t.Errorf("coordinates = %v,%v", cfg.Latitude, cfg.Longitude)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if cfg.RemindCron != "0 21 * * *" {
		t.Errorf("RemindCron = %q", cfg.RemindCron)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BIDAYA_BACKEND", "sqlite")
	t.Setenv("BIDAYA_DEBUG", "true")
	t.Setenv("BIDAYA_LATITUDE", "21.4225")
	t.Setenv("BIDAYA_LONGITUDE", "39.8262")
	t.Setenv("BIDAYA_REMOTE_FIRST", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != "sqlite" || !cfg.Debug || cfg.Latitude != 21.4225 || !cfg.RemoteFirst {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("BIDAYA_BACKEND", "mongo")
	if _, err := Load(); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandHome("~/.config/bidaya")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, ".config/bidaya") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got, _ := ExpandHome("/tmp/x"); got != "/tmp/x" {
		t.Errorf("absolute path changed: %q", got)
	}
}

func TestDocumentPath(t *testing.T) {
	if p := DocumentPath("/h", constants.BackendSQLite); !strings.HasSuffix(p, "bidaya.db") {
		t.Errorf("sqlite path = %q", p)
	}
	if p := DocumentPath("/h", constants.BackendJSON); !strings.HasSuffix(p, "bidaya.json") {
		t.Errorf("json path = %q", p)
	}
}
