// Package validation checks a state document for values the commands
// would never produce, such as a hand-edited file or a bad import.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/bidaya/internal/constants"
	"github.com/julianstephens/bidaya/internal/models"
	"github.com/julianstephens/bidaya/internal/seed"
)

type IssueType string

const (
	IssueDuplicateID       IssueType = "duplicate_id"
	IssueMissingSeedID     IssueType = "missing_seed_id"
	IssueLevelOutOfRange   IssueType = "level_out_of_range"
	IssueNegativeCount     IssueType = "negative_count"
	IssueInvalidDate       IssueType = "invalid_date"
	IssuePrayerHistory     IssueType = "prayer_history"
	IssueTodayPrayerDiffer IssueType = "today_prayer_diverged"
	IssueInvalidStats      IssueType = "invalid_stats"
)

type Issue struct {
	Type        IssueType
	Description string
}

type Result struct {
	Issues []Issue
}

func (r *Result) HasIssues() bool {
	return len(r.Issues) > 0
}

func (r *Result) add(t IssueType, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{Type: t, Description: fmt.Sprintf(format, args...)})
}

// FormatReport returns a human-readable list of issues
func (r *Result) FormatReport() string {
	if !r.HasIssues() {
		return "No issues detected."
	}
	var b strings.Builder
	b.WriteString("Issues detected:\n")
	for _, i := range r.Issues {
		fmt.Fprintf(&b, "- %s\n", i.Description)
	}
	return b.String()
}

// Validate checks state
func Validate(state models.AppState) Result {
	var r Result

	ids := seed.IDs()
	checkIDs(&r, "tasks", ids.Tasks, collect(state.Tasks, func(t models.Task) string { return t.ID }))
	checkIDs(&r, "bodyScans", ids.BodyScans, collect(state.BodyScans, func(b models.BodyPartScan) string { return b.ID }))
	checkIDs(&r, "heartDiseases", ids.HeartDiseases, collect(state.HeartDiseases, func(h models.HeartDisease) string { return h.ID }))
	checkIDs(&r, "wiridLogs", ids.WiridLogs, collect(state.WiridLogs, func(w models.WiridLog) string { return w.ID }))
	checkIDs(&r, "networkProtocols", ids.NetworkProtocols, collect(state.NetworkProtocols, func(p models.NetworkProtocol) string { return p.ID }))

	for _, h := range state.HeartDiseases {
		if h.Level < constants.MinDiseaseLevel || h.Level > constants.MaxDiseaseLevel {
			r.add(IssueLevelOutOfRange, "Heart disease %s has level %d outside %d..%d", h.ID, h.Level, constants.MinDiseaseLevel, constants.MaxDiseaseLevel)
		}
	}
	for _, w := range state.WiridLogs {
		if w.Count < 0 {
			r.add(IssueNegativeCount, "Wirid %s has negative count %d", w.ID, w.Count)
		}
		if w.LastUpdated != "" {
			if _, err := time.Parse(time.RFC3339, w.LastUpdated); err != nil {
				r.add(IssueInvalidDate, "Wirid %s has invalid lastUpdated %q", w.ID, w.LastUpdated)
			}
		}
	}

	if state.LastResetDate != "" && !isDate(state.LastResetDate) {
		r.add(IssueInvalidDate, "lastResetDate %q is not YYYY-MM-DD", state.LastResetDate)
	}
	if len(state.PrayerStats) > constants.MaxPrayerHistory {
		r.add(IssuePrayerHistory, "prayerStats holds %d days, more than %d", len(state.PrayerStats), constants.MaxPrayerHistory)
	}
	seen := map[string]bool{}
	for _, p := range state.PrayerStats {
		if !isDate(p.Date) {
			r.add(IssueInvalidDate, "Prayer log has invalid date %q", p.Date)
		}
		if seen[p.Date] {
			r.add(IssuePrayerHistory, "Prayer log for %s appears more than once", p.Date)
		}
		seen[p.Date] = true
	}
	if state.TodayPrayer != nil {
		if i := state.PrayerIndex(state.TodayPrayer.Date); i < 0 {
			r.add(IssueTodayPrayerDiffer, "todayPrayer %s has no prayerStats entry", state.TodayPrayer.Date)
		} else if state.PrayerStats[i] != *state.TodayPrayer {
			r.add(IssueTodayPrayerDiffer, "todayPrayer differs from its prayerStats entry for %s", state.TodayPrayer.Date)
		}
	}

	if s := state.UserStats; s != nil {
		if s.Level < 1 || s.XP < 0 || s.Streak < 0 || s.TotalGoodDeeds < 0 || s.TotalSinsAvoided < 0 {
			r.add(IssueInvalidStats, "userStats has negative or zero-level values: %+v", *s)
		}
	}
	return r
}

func checkIDs(r *Result, catalog string, want, got []string) {
	count := map[string]int{}
	for _, id := range got {
		count[id]++
	}
	for id, n := range count {
		if n > 1 {
			r.add(IssueDuplicateID, "%s contains id %s %d times", catalog, id, n)
		}
	}
	for _, id := range want {
		if count[id] == 0 {
			r.add(IssueMissingSeedID, "%s is missing id %s", catalog, id)
		}
	}
}

func collect[T any](items []T, id func(T) string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = id(item)
	}
	return out
}

func isDate(s string) bool {
	_, err := time.Parse(constants.DateFormat, s)
	return err == nil
}
