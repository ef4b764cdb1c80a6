package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/bidaya/internal/logger"
)

var (
	// ErrFormat marks a corrupted local document or an invalid import file
	ErrFormat = stderrors.New("invalid state document")
	// ErrRemote marks a failed push or pull against the remote store
	ErrRemote = stderrors.New("remote sync failed")
	// ErrInvalidInput marks a command parameter outside its allowed range
	ErrInvalidInput = stderrors.New("invalid input")
	// ErrNotFound marks a command addressing an id missing from its catalog
	ErrNotFound = stderrors.New("not found")
	// ErrNoDocument is returned by a storage backend that holds no state yet
	ErrNoDocument = stderrors.New("no state document stored")
)

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// Kind returns a short category name for err, or "internal" when it
// belongs to no known category
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case Is(err, ErrInvalidInput):
		return "invalid_input"
	case Is(err, ErrNotFound):
		return "not_found"
	case Is(err, ErrFormat):
		return "format"
	case Is(err, ErrRemote):
		return "remote"
	default:
		return "internal"
	}
}

// NotFound wraps ErrNotFound with the catalog and id that were looked up
func NotFound(catalog, id string) error {
	return fmt.Errorf("%w: %s %q", ErrNotFound, catalog, id)
}

// InvalidInput wraps ErrInvalidInput with a description of the problem
func InvalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err, "kind", Kind(err))
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
