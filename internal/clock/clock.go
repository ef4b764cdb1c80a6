// Package clock supplies the time source used for daily rollover so that
// day boundaries are deterministic in tests.
package clock

import (
	"fmt"
	"time"

	"github.com/julianstephens/bidaya/internal/constants"
)

// Clock returns the current time
type Clock interface {
	Now() time.Time
}

// System is the wall clock in a fixed location
type System struct {
	Location *time.Location
}

// NewSystem returns a wall clock in the named IANA timezone.
// An empty name or "Local" uses the system timezone.
func NewSystem(timezone string) (System, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return System{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return System{Location: loc}, nil
}

func (s System) Now() time.Time {
	if s.Location == nil {
		return time.Now()
	}
	return time.Now().In(s.Location)
}

// Fixed always returns the same instant
type Fixed struct {
	T time.Time
}

func (f *Fixed) Now() time.Time { return f.T }

// Advance moves the fixed clock forward by d
func (f *Fixed) Advance(d time.Duration) { f.T = f.T.Add(d) }

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// Today returns the local calendar date of c as YYYY-MM-DD
func Today(c Clock) string {
	return c.Now().Format(constants.DateFormat)
}

// DaysBetween returns the number of whole calendar days from one
// YYYY-MM-DD date to another. It is negative when to precedes from.
func DaysBetween(from, to string) (int, error) {
	a, err := time.Parse(constants.DateFormat, from)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", from, err)
	}
	b, err := time.Parse(constants.DateFormat, to)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", to, err)
	}
	// Both parse as UTC midnight so the difference is an exact multiple of 24h.
	return int(b.Sub(a).Hours() / 24), nil
}
