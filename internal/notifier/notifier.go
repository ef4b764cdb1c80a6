// Package notifier posts desktop notifications through the companion tray
// app. The tray advertises itself with a "port|pid|secret" lockfile.
package notifier

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/bidaya/internal/constants"
	"github.com/julianstephens/bidaya/internal/logger"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess

	// ErrTrayNotRunning means no live tray process owns the lockfile
	ErrTrayNotRunning = stderrors.New("bidaya-tray is not running")
)

type Notifier struct {
	client *http.Client
}

type payload struct {
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

// tray is the parsed lockfile
type tray struct {
	port   int
	pid    int
	secret string
}

func New() *Notifier {
	return &Notifier{client: &http.Client{Timeout: 3 * time.Second}}
}

// Notify shows text through the tray app
func (n *Notifier) Notify(text string) error {
	dir, err := TrayConfigDir()
	if err != nil {
		return err
	}
	t, err := readLockfile(filepath.Join(dir, constants.NotifierLockfileName))
	if err != nil {
		return err
	}
	if err := t.checkAlive(); err != nil {
		return err
	}
	return n.send(t, payload{Text: text, DurationMs: constants.NotificationDurationMs})
}

// NotifyOrLog is Notify for callers that cannot act on a failure
func (n *Notifier) NotifyOrLog(text string) {
	if err := n.Notify(text); err != nil {
		logger.Debug("Notification not delivered", "text", text, "error", err)
	}
}

// TrayConfigDir returns the tray app's config directory, honouring a
// custom lockfile_dir in its settings.json
func TrayConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	dir := filepath.Join(configDir, constants.TrayAppIdentifier)

	data, err := os.ReadFile(filepath.Join(dir, "settings.json"))
	if err != nil {
		return dir, nil
	}
	var settings struct {
		Settings struct {
			LockfileDir string `json:"lockfile_dir"`
		} `json:"settings"`
	}
	if json.Unmarshal(data, &settings) == nil && settings.Settings.LockfileDir != "" {
		return settings.Settings.LockfileDir, nil
	}
	return dir, nil
}

func readLockfile(path string) (tray, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return tray{}, ErrTrayNotRunning
	}
	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return tray{}, stderrors.New("lockfile is malformed")
	}

	port, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return tray{}, stderrors.New("invalid port number in lockfile")
	}
	if port < 1 || port > 65535 {
		return tray{}, fmt.Errorf("port number %d is outside valid range (1-65535)", port)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return tray{}, stderrors.New("invalid process ID in lockfile")
	}
	secret := strings.TrimSpace(parts[2])
	if secret == "" {
		return tray{}, stderrors.New("secret in lockfile is empty")
	}
	return tray{port: port, pid: pid, secret: secret}, nil
}

func (t tray) checkAlive() error {
	p, err := findProcessFunc(t.pid)
	if err != nil || p == nil {
		return ErrTrayNotRunning
	}
	if !strings.HasPrefix(p.Executable(), constants.TrayExecutablePrefix) {
		return fmt.Errorf("process with PID %d is not %s (is %s)", t.pid, constants.TrayExecutablePrefix, p.Executable())
	}
	return nil
}

func (n *Notifier) send(t tray, p payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("http://127.0.0.1:%d", t.port), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Bidaya-Secret", t.secret)

	res, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode == http.StatusOK {
		return nil
	}
	msg, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, string(msg))
}
