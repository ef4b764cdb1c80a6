package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/julianstephens/bidaya/internal/backup"
	"github.com/julianstephens/bidaya/internal/clock"
	"github.com/julianstephens/bidaya/internal/cloudsync"
	"github.com/julianstephens/bidaya/internal/commands"
	"github.com/julianstephens/bidaya/internal/config"
	"github.com/julianstephens/bidaya/internal/errors"
	"github.com/julianstephens/bidaya/internal/keyring"
	"github.com/julianstephens/bidaya/internal/logger"
	"github.com/julianstephens/bidaya/internal/models"
	"github.com/julianstephens/bidaya/internal/providers/advice"
	"github.com/julianstephens/bidaya/internal/providers/prayertimes"
	"github.com/julianstephens/bidaya/internal/remote"
	"github.com/julianstephens/bidaya/internal/remote/postgres"
	"github.com/julianstephens/bidaya/internal/session"
	"github.com/julianstephens/bidaya/internal/storage"
)

// MemoryDSN selects the in-process remote store
const MemoryDSN = "memory"

type Context struct {
	Ctx         context.Context
	Config      config.Config
	Home        string
	Clock       clock.Clock
	Store       *storage.StateStore
	Backups     *backup.Manager
	Remote      remote.Adapter
	Advice      advice.Provider
	PrayerTimes prayertimes.Provider
	Notify      storage.NotifyFunc
	// RemoteFirst commits each change to the remote store before the
	// local copy and reverts it when the push fails
	RemoteFirst bool
	In          io.Reader
	Out         io.Writer

	session *session.Session
}

func (c *Context) runCtx() context.Context {
	if c.Ctx == nil {
		return context.Background()
	}
	return c.Ctx
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// confirm asks a yes/no question, defaulting to no
func (c *Context) confirm(question string) (bool, error) {
	in := c.In
	if in == nil {
		in = os.Stdin
	}
	c.printf("%s [y/N]: ", question)
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

func (c *Context) printf(format string, args ...any) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) println(args ...any) {
	fmt.Fprintln(c.out(), args...)
}

// load opens the backend and starts a session over its state
func (c *Context) load() (*session.Session, error) {
	if c.session != nil {
		return c.session, nil
	}
	if err := c.Store.Backend().Load(); err != nil {
		return nil, err
	}
	committer, err := c.committer()
	if err != nil {
		return nil, err
	}
	var opts []session.Option
	if c.Clock != nil {
		opts = append(opts, session.WithClock(c.Clock))
	}
	c.session = session.New(c.Store.GetState(c.runCtx()), committer, opts...)
	return c.session, nil
}

// current returns the open session's state, or the stored state when no
// session has been opened yet
func (c *Context) current() (models.AppState, error) {
	if c.session != nil {
		return c.session.State(), nil
	}
	if err := c.Store.Backend().Load(); err != nil {
		return models.AppState{}, err
	}
	return c.Store.GetState(c.runCtx()), nil
}

func (c *Context) committer() (session.Committer, error) {
	if !c.RemoteFirst {
		return session.LocalCommitter{Store: c.Store}, nil
	}
	if c.Remote == nil {
		return nil, fmt.Errorf("%w: --remote-first needs a remote store", errors.ErrRemote)
	}
	userID, ok := keyring.SessionUser()
	if !ok {
		return nil, fmt.Errorf("%w: --remote-first needs a signed-in user (run 'bidaya sync login')", errors.ErrRemote)
	}
	logger.Debug("Using remote-first commits", "user", userID)
	return session.RemoteCommitter{Adapter: c.Remote, UserID: userID, Local: c.Store}, nil
}

func (c *Context) execute(cmd commands.Command) (models.AppState, error) {
	s, err := c.load()
	if err != nil {
		return models.AppState{}, err
	}
	return s.Execute(c.runCtx(), cmd)
}

// syncer returns a syncer over the configured remote store
func (c *Context) syncer() (*cloudsync.Syncer, error) {
	if c.Remote == nil {
		return nil, fmt.Errorf("%w: no remote store configured (set BIDAYA_REMOTE_DSN or run 'bidaya sync login --dsn')", errors.ErrRemote)
	}
	return cloudsync.New(c.Remote, c.Store), nil
}

// PerformAutomaticBackup snapshots the document, logging instead of failing
func (c *Context) PerformAutomaticBackup() {
	if c.Backups == nil {
		return
	}
	if _, err := c.Backups.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Close drains background pushes and releases the stores
func (c *Context) Close() {
	c.Store.Wait()
	if err := c.Store.Backend().Close(); err != nil {
		logger.Warn("Failed to close storage", "error", err)
	}
	if c.Remote != nil {
		if err := c.Remote.Close(); err != nil {
			logger.Warn("Failed to close remote store", "error", err)
		}
	}
}

// OpenRemote builds the remote store named by dsn. The store connects on
// first use. Only a dsn read from the OS keyring may carry a password.
func OpenRemote(dsn string, fromKeyring bool) (remote.Adapter, error) {
	if dsn == MemoryDSN {
		return remote.NewMemory(), nil
	}
	if !fromKeyring {
		if err := postgres.ValidateConnString(dsn); err != nil {
			return nil, err
		}
	}
	return postgres.New(dsn), nil
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
