package seed

import (
	"reflect"
	"testing"
	"time"
)

func TestDefaultCatalogs(t *testing.T) {
	s := Default(time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC))

	if len(s.Tasks) != 10 {
		t.Errorf("len(Tasks) = %d, want 10", len(s.Tasks))
	}
	if len(s.BodyScans) != 7 {
		t.Errorf("len(BodyScans) = %d, want 7", len(s.BodyScans))
	}
	if len(s.HeartDiseases) != 3 {
		t.Errorf("len(HeartDiseases) = %d, want 3", len(s.HeartDiseases))
	}
	if len(s.WiridLogs) != 3 {
		t.Errorf("len(WiridLogs) = %d, want 3", len(s.WiridLogs))
	}
	if len(s.NetworkProtocols) != 6 {
		t.Errorf("len(NetworkProtocols) = %d, want 6", len(s.NetworkProtocols))
	}

	for _, task := range s.Tasks {
		if task.Completed || task.Locked {
			t.Errorf("task %s starts completed=%v locked=%v", task.ID, task.Completed, task.Locked)
		}
	}
	for _, h := range s.HeartDiseases {
		if h.Level != 1 {
			t.Errorf("heart disease %s level = %d, want 1", h.ID, h.Level)
		}
	}
	for _, w := range s.WiridLogs {
		if w.Count != 0 || w.Target != 100 {
			t.Errorf("wirid %s count=%d target=%d", w.ID, w.Count, w.Target)
		}
		if w.LastUpdated != "2026-01-01T08:00:00Z" {
			t.Errorf("wirid %s lastUpdated = %q", w.ID, w.LastUpdated)
		}
	}

	if s.TodayPrayer != nil {
		t.Error("TodayPrayer should be nil before rollover")
	}
	if s.PrayerStats == nil || len(s.PrayerStats) != 0 {
		t.Errorf("PrayerStats = %v, want empty non-nil slice", s.PrayerStats)
	}
	if s.UserStats == nil || *s.UserStats != DefaultStats() {
		t.Errorf("UserStats = %+v, want %+v", s.UserStats, DefaultStats())
	}
	if s.LastResetDate != "" {
		t.Errorf("LastResetDate = %q, want empty", s.LastResetDate)
	}
}

func TestDefaultIsStable(t *testing.T) {
	now := time.Now()
	a := Default(now)
	b := Default(now)
	if !reflect.DeepEqual(a, b) {
		t.Error("Default() returned different values for the same instant")
	}

	// Mutating one result must not leak into the next call
	a.Tasks[0].Completed = true
	a.HeartDiseases[0].Level = 9
	c := Default(now)
	if c.Tasks[0].Completed || c.HeartDiseases[0].Level != 1 {
		t.Error("Default() shares catalog storage between calls")
	}
}

func TestIDsOrder(t *testing.T) {
	ids := IDs()
	want := []string{"t1", "t2", "t3", "t4", "t5", "t6", "t7", "t8", "t9", "t10"}
	if !reflect.DeepEqual(ids.Tasks, want) {
		t.Errorf("task ids = %v, want %v", ids.Tasks, want)
	}
	if !reflect.DeepEqual(ids.HeartDiseases, []string{"h1", "h2", "h3"}) {
		t.Errorf("heart ids = %v", ids.HeartDiseases)
	}
	if len(ids.BodyScans) != 7 || ids.BodyScans[6] != "b7" {
		t.Errorf("body scan ids = %v", ids.BodyScans)
	}
	if len(ids.NetworkProtocols) != 6 || ids.NetworkProtocols[0] != "np1" {
		t.Errorf("protocol ids = %v", ids.NetworkProtocols)
	}
	if !reflect.DeepEqual(ids.WiridLogs, []string{"w1", "w2", "w3"}) {
		t.Errorf("wirid ids = %v", ids.WiridLogs)
	}
}
