// Package keyring keeps protected values in the OS keyring: the remote
// connection string and the signed-in user id.
package keyring

import (
	stderrors "errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/bidaya/internal/constants"
)

var (
	// ErrNotFound is returned when nothing is stored under the requested entry
	ErrNotFound = stderrors.New("credentials not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = stderrors.New("OS keyring is not available")
)

func get(user string) (string, error) {
	v, err := keyring.Get(constants.AppName, user)
	if err != nil {
		if stderrors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return v, nil
}

func set(user, value, what string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", what)
	}
	if err := keyring.Set(constants.AppName, user, value); err != nil {
		return fmt.Errorf("failed to store %s in keyring: %w", what, err)
	}
	return nil
}

func del(user, what string) error {
	if err := keyring.Delete(constants.AppName, user); err != nil {
		if stderrors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete %s from keyring: %w", what, err)
	}
	return nil
}

// GetConnectionString returns the stored remote connection string
func GetConnectionString() (string, error) {
	return get(constants.DefaultKeyringUser)
}

func SetConnectionString(connStr string) error {
	return set(constants.DefaultKeyringUser, connStr, "connection string")
}

func DeleteConnectionString() error {
	return del(constants.DefaultKeyringUser, "connection string")
}

// GetSessionUser returns the signed-in user id
func GetSessionUser() (string, error) {
	return get(constants.SessionKeyringUser)
}

func SetSessionUser(userID string) error {
	return set(constants.SessionKeyringUser, userID, "session user")
}

func DeleteSessionUser() error {
	return del(constants.SessionKeyringUser, "session user")
}

// SessionUser adapts GetSessionUser to the storage session lookup
func SessionUser() (string, bool) {
	id, err := GetSessionUser()
	return id, err == nil && id != ""
}

// IsAvailable is a best-effort check that the OS keyring answers
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || stderrors.Is(err, keyring.ErrNotFound)
}
