package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/bidaya/internal/models"
	"github.com/julianstephens/bidaya/internal/rollover"
	"github.com/julianstephens/bidaya/internal/seed"
)

func fresh() models.AppState {
	return rollover.Initialize(seed.Default(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)), "2026-03-10")
}

func TestValidateFreshState(t *testing.T) {
	r := Validate(fresh())
	if r.HasIssues() {
		t.Errorf("fresh state has issues:\n%s", r.FormatReport())
	}
	if r.FormatReport() != "No issues detected." {
		t.Errorf("FormatReport = %q", r.FormatReport())
	}
}

func TestValidateDetectsIssues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.AppState)
		want   IssueType
	}{
		{"duplicate id", func(s *models.AppState) { s.Tasks = append(s.Tasks, s.Tasks[0]) }, IssueDuplicateID},
		{"missing seed id", func(s *models.AppState) { s.BodyScans = s.BodyScans[1:] }, IssueMissingSeedID},
		{"level too high", func(s *models.AppState) { s.HeartDiseases[0].Level = 11 }, IssueLevelOutOfRange},
		{"negative wirid", func(s *models.AppState) { s.WiridLogs[0].Count = -2 }, IssueNegativeCount},
		{"bad reset date", func(s *models.AppState) { s.LastResetDate = "10/03/2026" }, IssueInvalidDate},
		{"diverged today", func(s *models.AppState) { s.TodayPrayer.Isya = 1 }, IssueTodayPrayerDiffer},
		{"duplicate prayer day", func(s *models.AppState) { s.PrayerStats = append(s.PrayerStats, s.PrayerStats[0]) }, IssuePrayerHistory},
		{"negative xp", func(s *models.AppState) { s.UserStats.XP = -1 }, IssueInvalidStats},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := fresh()
			tt.mutate(&s)
			r := Validate(s)
			found := false
			for _, i := range r.Issues {
				if i.Type == tt.want {
					found = true
				}
			}
			if !found {
				t.Errorf("want issue %s, got:\n%s", tt.want, r.FormatReport())
			}
			if !strings.HasPrefix(r.FormatReport(), "Issues detected:") {
				t.Errorf("FormatReport = %q", r.FormatReport())
			}
		})
	}
}
