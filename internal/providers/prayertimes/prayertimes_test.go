package prayertimes

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/bidaya/internal/constants"
	"github.com/julianstephens/bidaya/internal/models"
)

const aladhanBody = `{"code":200,"status":"OK","data":{"timings":{"Fajr":"04:35","Sunrise":"05:50","Dhuhr":"11:58","Asr":"15:20 (WIB)","Maghrib":"18:03","Isha":"19:14"}}}`

func TestClientTimes(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, aladhanBody)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	got, err := c.Times(context.Background(), -6.2088, 106.8456, date)
	if err != nil {
		t.Fatalf("Times: %v", err)
	}

	want := Times{Fajr: "04:35", Dhuhr: "11:58", Asr: "15:20", Maghrib: "18:03", Isha: "19:14"}
	if got != want {
		t.Errorf("Times = %+v, want %+v", got, want)
	}
	if gotPath != fmt.Sprintf("/timings/%d", date.Unix()) {
		t.Errorf("path = %s", gotPath)
	}
	if !strings.Contains(gotQuery, "method=2") || !strings.Contains(gotQuery, "latitude=-6.2088") {
		t.Errorf("query = %s", gotQuery)
	}
}

func TestClientErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"http error", http.StatusBadGateway, "oops"},
		{"api error", http.StatusOK, `{"code":400,"status":"Bad Request"}`},
		{"missing timings", http.StatusOK, `{"code":200,"data":{}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()
			if _, err := NewClient(srv.URL, time.Second).Times(context.Background(), 0, 0, time.Now()); err == nil {
				t.Error("expected error")
			}
		})
	}
}

type stubProvider struct {
	calls [][2]float64
	fail  int
}

func (s *stubProvider) Times(ctx context.Context, lat, lng float64, date time.Time) (Times, error) {
	s.calls = append(s.calls, [2]float64{lat, lng})
	if len(s.calls) <= s.fail {
		return Times{}, fmt.Errorf("unreachable")
	}
	return Times{Fajr: "04:35", Dhuhr: "11:58", Asr: "15:20", Maghrib: "18:03", Isha: "19:14"}, nil
}

func TestLookupFallsBackToJakarta(t *testing.T) {
	p := &stubProvider{fail: 1}
	_, fallback, err := Lookup(context.Background(), p, 51.5, -0.12, time.Now())
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if !fallback {
		t.Error("fallback not reported")
	}
	if len(p.calls) != 2 || p.calls[1] != [2]float64{constants.FallbackLatitude, constants.FallbackLongitude} {
		t.Errorf("calls = %v", p.calls)
	}
}

func TestActiveTimeOfDay(t *testing.T) {
	times := Times{Fajr: "04:35", Dhuhr: "11:58", Asr: "15:20", Maghrib: "18:03", Isha: "19:14"}
	tests := []struct {
		clock string
		want  models.TimeOfDay
	}{
		{"04:34", models.Night},
		{"04:35", models.Morning},
		{"11:57", models.Morning},
		{"11:58", models.Afternoon},
		{"18:03", models.Evening},
		{"19:14", models.Night},
		{"23:59", models.Night},
		{"00:00", models.Night},
	}
	for _, tt := range tests {
		hm, _ := time.Parse(constants.TimeFormat, tt.clock)
		now := time.Date(2026, 3, 10, hm.Hour(), hm.Minute(), 0, 0, time.UTC)
		got, err := ActiveTimeOfDay(times, now)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("ActiveTimeOfDay(%s) = %s, want %s", tt.clock, got, tt.want)
		}
	}
}

func TestIsGroupActiveWithoutTimes(t *testing.T) {
	for _, g := range models.TimesOfDay {
		if !IsGroupActive(nil, g, time.Now()) {
			t.Errorf("group %s locked without prayer times", g)
		}
	}
}
