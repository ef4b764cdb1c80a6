package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/julianstephens/bidaya/internal/cloudsync"
	"github.com/julianstephens/bidaya/internal/errors"
	"github.com/julianstephens/bidaya/internal/keyring"
)

type SyncLoginCmd struct {
	User string `help:"Existing account id. A new id is generated when omitted."`
	DSN  string `name:"dsn" help:"Remote connection string to store in the OS keyring. Use 'memory' for a throwaway in-process store."`
}

func (c *SyncLoginCmd) Run(ctx *Context) error {
	local, err := ctx.current()
	if err != nil {
		return err
	}
	if c.DSN != "" {
		adapter, err := OpenRemote(c.DSN, true)
		if err != nil {
			return err
		}
		if c.DSN != MemoryDSN {
			if err := keyring.SetConnectionString(c.DSN); err != nil {
				return err
			}
		}
		if ctx.Remote != nil {
			ctx.Remote.Close()
		}
		ctx.Remote = adapter
	}
	syncer, err := ctx.syncer()
	if err != nil {
		return err
	}

	userID := c.User
	if userID == "" {
		userID = uuid.NewString()
	}
	_, outcome, err := syncer.SignIn(ctx.runCtx(), userID, local)
	if err != nil {
		return err
	}
	if err := keyring.SetSessionUser(userID); err != nil {
		return err
	}
	// The next command opens a session bound to the signed-in user
	ctx.session = nil

	switch outcome {
	case cloudsync.Pulled:
		ctx.printf("✓ Signed in as %s, loaded your saved state\n", userID)
	case cloudsync.Pushed:
		ctx.printf("✓ Signed in as %s, uploaded local state\n", userID)
	}
	return nil
}

type SyncLogoutCmd struct {
	Forget bool `help:"Also remove the stored connection string."`
}

func (c *SyncLogoutCmd) Run(ctx *Context) error {
	if err := keyring.DeleteSessionUser(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			ctx.println("Not signed in.")
			return nil
		}
		return err
	}
	if c.Forget {
		if err := keyring.DeleteConnectionString(); err != nil && !errors.Is(err, keyring.ErrNotFound) {
			return err
		}
	}
	ctx.println("✓ Signed out. Local data is kept.")
	return nil
}

type SyncPushCmd struct{}

func (c *SyncPushCmd) Run(ctx *Context) error {
	userID, syncer, err := signedIn(ctx)
	if err != nil {
		return err
	}
	s, err := ctx.load()
	if err != nil {
		return err
	}
	if err := syncer.Push(ctx.runCtx(), userID, s.State()); err != nil {
		return err
	}
	ctx.println("✓ Pushed local state")
	return nil
}

type SyncPullCmd struct{}

func (c *SyncPullCmd) Run(ctx *Context) error {
	userID, syncer, err := signedIn(ctx)
	if err != nil {
		return err
	}
	s, err := ctx.load()
	if err != nil {
		return err
	}
	state, err := syncer.Pull(ctx.runCtx(), userID)
	if err != nil {
		if errors.Is(err, errors.ErrNoDocument) {
			return fmt.Errorf("%w: no remote state for %s", errors.ErrNotFound, userID)
		}
		return err
	}
	s.Replace(state)
	ctx.println("✓ Pulled remote state")
	return nil
}

func signedIn(ctx *Context) (string, *cloudsync.Syncer, error) {
	userID, ok := keyring.SessionUser()
	if !ok {
		return "", nil, fmt.Errorf("not signed in, run 'bidaya sync login' first")
	}
	syncer, err := ctx.syncer()
	if err != nil {
		return "", nil, err
	}
	return userID, syncer, nil
}
