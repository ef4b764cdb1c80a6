// Package prayertimes fetches the five daily prayer times and maps the
// clock onto the routine task groups they bound.
package prayertimes

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/julianstephens/bidaya/internal/constants"
	"github.com/julianstephens/bidaya/internal/logger"
	"github.com/julianstephens/bidaya/internal/models"
)

// Times holds HH:MM local times
type Times struct {
	Fajr    string `json:"fajr"`
	Dhuhr   string `json:"dhuhr"`
	Asr     string `json:"asr"`
	Maghrib string `json:"maghrib"`
	Isha    string `json:"isha"`
}

type Provider interface {
	Times(ctx context.Context, lat, lng float64, date time.Time) (Times, error)
}

// Client talks to the Aladhan timings API
type Client struct {
	BaseURL string
	Method  int
	HTTP    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = constants.DefaultPrayerAPI
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Method:  constants.PrayerCalcMethod,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Times(ctx context.Context, lat, lng float64, date time.Time) (Times, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprint(lat))
	q.Set("longitude", fmt.Sprint(lng))
	q.Set("method", fmt.Sprint(c.Method))
	endpoint := fmt.Sprintf("%s/timings/%d?%s", c.BaseURL, date.Unix(), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Times{}, fmt.Errorf("failed to build prayer times request: %w", err)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return Times{}, fmt.Errorf("failed to fetch prayer times: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Times{}, fmt.Errorf("failed to read prayer times: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Times{}, fmt.Errorf("prayer times API returned %s", resp.Status)
	}
	if code := gjson.GetBytes(body, "code"); code.Int() != 200 {
		return Times{}, fmt.Errorf("prayer times API returned code %s", code.Raw)
	}

	timings := gjson.GetBytes(body, "data.timings")
	t := Times{
		Fajr:    clockTime(timings.Get("Fajr").String()),
		Dhuhr:   clockTime(timings.Get("Dhuhr").String()),
		Asr:     clockTime(timings.Get("Asr").String()),
		Maghrib: clockTime(timings.Get("Maghrib").String()),
		Isha:    clockTime(timings.Get("Isha").String()),
	}
	if err := t.Validate(); err != nil {
		return Times{}, err
	}
	return t, nil
}

// clockTime strips a trailing zone label such as "04:31 (WIB)"
func clockTime(s string) string {
	s, _, _ = strings.Cut(strings.TrimSpace(s), " ")
	return s
}

func (t Times) Validate() error {
	for name, v := range map[string]string{"Fajr": t.Fajr, "Dhuhr": t.Dhuhr, "Asr": t.Asr, "Maghrib": t.Maghrib, "Isha": t.Isha} {
		if _, err := time.Parse(constants.TimeFormat, v); err != nil {
			return fmt.Errorf("invalid %s time %q", name, v)
		}
	}
	return nil
}

// Lookup asks p for the times at lat/lng, retrying at the fallback
// coordinates when that fails. The second return value reports whether
// the fallback was used.
func Lookup(ctx context.Context, p Provider, lat, lng float64, date time.Time) (Times, bool, error) {
	t, err := p.Times(ctx, lat, lng, date)
	if err == nil {
		return t, false, nil
	}
	if lat == constants.FallbackLatitude && lng == constants.FallbackLongitude {
		return Times{}, false, err
	}
	logger.Warn("Prayer times lookup failed, using fallback location", "error", err)
	t, err = p.Times(ctx, constants.FallbackLatitude, constants.FallbackLongitude, date)
	return t, true, err
}

// ActiveTimeOfDay returns the task group whose window contains now.
// Night wraps midnight: it runs from isha to the next fajr.
func ActiveTimeOfDay(t Times, now time.Time) (models.TimeOfDay, error) {
	at := func(hhmm string) (time.Time, error) {
		p, err := time.Parse(constants.TimeFormat, hhmm)
		if err != nil {
			return time.Time{}, err
		}
		return time.Date(now.Year(), now.Month(), now.Day(), p.Hour(), p.Minute(), 0, 0, now.Location()), nil
	}
	fajr, err := at(t.Fajr)
	if err != nil {
		return "", err
	}
	dhuhr, err := at(t.Dhuhr)
	if err != nil {
		return "", err
	}
	maghrib, err := at(t.Maghrib)
	if err != nil {
		return "", err
	}
	isha, err := at(t.Isha)
	if err != nil {
		return "", err
	}

	switch {
	case !now.Before(fajr) && now.Before(dhuhr):
		return models.Morning, nil
	case !now.Before(dhuhr) && now.Before(maghrib):
		return models.Afternoon, nil
	case !now.Before(maghrib) && now.Before(isha):
		return models.Evening, nil
	default:
		return models.Night, nil
	}
}

// IsGroupActive reports whether tasks of group may be ticked now. Without
// prayer times every group is open.
func IsGroupActive(t *Times, group models.TimeOfDay, now time.Time) bool {
	if t == nil {
		return true
	}
	active, err := ActiveTimeOfDay(*t, now)
	if err != nil {
		return true
	}
	return active == group
}
