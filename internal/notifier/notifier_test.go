package notifier

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/bidaya/internal/constants"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return m.executable }

func withConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old := userConfigDirFunc
	userConfigDirFunc = func() (string, error) { return dir, nil }
	t.Cleanup(func() { userConfigDirFunc = old })
	return dir
}

func withProcess(t *testing.T, exe string) {
	t.Helper()
	old := findProcessFunc
	findProcessFunc = func(pid int) (ps.Process, error) {
		if exe == "" {
			return nil, nil
		}
		return &mockProcess{pid: pid, executable: exe}, nil
	}
	t.Cleanup(func() { findProcessFunc = old })
}

func TestTrayConfigDir(t *testing.T) {
	base := withConfigDir(t)
	want := filepath.Join(base, constants.TrayAppIdentifier)
	if dir, err := TrayConfigDir(); err != nil || dir != want {
		t.Errorf("TrayConfigDir = %q, %v; want %q", dir, err, want)
	}

	if err := os.MkdirAll(want, 0755); err != nil {
		t.Fatal(err)
	}
	settings := `{"settings": {"lockfile_dir": "/custom/tray"}}`
	if err := os.WriteFile(filepath.Join(want, "settings.json"), []byte(settings), 0644); err != nil {
		t.Fatal(err)
	}
	if dir, _ := TrayConfigDir(); dir != "/custom/tray" {
		t.Errorf("TrayConfigDir = %q, want custom dir", dir)
	}
}

func TestReadLockfile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"valid", "4567|123|s3cret", false},
		{"two fields", "4567|123", true},
		{"bad port", "abc|123|s", true},
		{"port out of range", "70000|123|s", true},
		{"bad pid", "4567|x|s", true},
		{"empty secret", "4567|123| ", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "lock")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			_, err := readLockfile(path)
			if (err != nil) != tt.wantErr {
				t.Errorf("readLockfile(%q) err = %v, wantErr %v", tt.content, err, tt.wantErr)
			}
		})
	}

	if _, err := readLockfile(filepath.Join(t.TempDir(), "missing")); err != ErrTrayNotRunning {
		t.Errorf("missing lockfile err = %v", err)
	}
}

func TestNotifyDelivers(t *testing.T) {
	var got payload
	var secret string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		secret = r.Header.Get("X-Bidaya-Secret")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	u, _ := url.Parse(srv.URL)
	port, _ := strconv.Atoi(u.Port())

	base := withConfigDir(t)
	withProcess(t, "bidaya-tray")
	dir := filepath.Join(base, constants.TrayAppIdentifier)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	lock := fmt.Sprintf("%d|%d|abc", port, os.Getpid())
	if err := os.WriteFile(filepath.Join(dir, constants.NotifierLockfileName), []byte(lock), 0600); err != nil {
		t.Fatal(err)
	}

	if err := New().Notify("Sync failed"); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if got.Text != "Sync failed" || got.DurationMs != constants.NotificationDurationMs || secret != "abc" {
		t.Errorf("payload = %+v secret = %q", got, secret)
	}
}

func TestNotifyRejectsForeignProcess(t *testing.T) {
	base := withConfigDir(t)
	withProcess(t, "firefox")
	dir := filepath.Join(base, constants.TrayAppIdentifier)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, constants.NotifierLockfileName), []byte("4567|99|abc"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := New().Notify("x"); err == nil {
		t.Error("expected error for a non-tray process")
	}
}
