package models

// UserStats holds the gamification counters. TotalGoodDeeds and
// TotalSinsAvoided are lifetime counters and never reset.
type UserStats struct {
	Level            int `json:"level"`
	XP               int `json:"xp"`
	Streak           int `json:"streak"`
	TotalGoodDeeds   int `json:"totalGoodDeeds"`
	TotalSinsAvoided int `json:"totalSinsAvoided"`
}

// AppState is the aggregate root persisted as a single document.
// Values are replaced wholesale; use Clone before changing anything.
type AppState struct {
	SchemaVersion    int               `json:"schemaVersion,omitempty"`
	Tasks            []Task            `json:"tasks"`
	BodyScans        []BodyPartScan    `json:"bodyScans"`
	HeartDiseases    []HeartDisease    `json:"heartDiseases"`
	WiridLogs        []WiridLog        `json:"wiridLogs"`
	NetworkProtocols []NetworkProtocol `json:"networkProtocols"`
	TodayPrayer      *PrayerLog        `json:"todayPrayer"`
	PrayerStats      []PrayerLog       `json:"prayerStats"`
	UserStats        *UserStats        `json:"userStats,omitempty"`
	LastResetDate    string            `json:"lastResetDate,omitempty"` // YYYY-MM-DD format
}

// Clone returns a deep copy of the state
func (s AppState) Clone() AppState {
	out := s
	out.Tasks = cloneSlice(s.Tasks)
	out.BodyScans = cloneSlice(s.BodyScans)
	out.HeartDiseases = cloneSlice(s.HeartDiseases)
	out.WiridLogs = cloneSlice(s.WiridLogs)
	out.NetworkProtocols = cloneSlice(s.NetworkProtocols)
	out.PrayerStats = cloneSlice(s.PrayerStats)
	if s.TodayPrayer != nil {
		p := *s.TodayPrayer
		out.TodayPrayer = &p
	}
	if s.UserStats != nil {
		u := *s.UserStats
		out.UserStats = &u
	}
	return out
}

// Stats returns the user stats, or the zero-progress value when absent
func (s AppState) Stats() UserStats {
	if s.UserStats == nil {
		return UserStats{Level: 1}
	}
	return *s.UserStats
}

// PrayerIndex returns the index of the prayer log for date, or -1
func (s AppState) PrayerIndex(date string) int {
	for i, p := range s.PrayerStats {
		if p.Date == date {
			return i
		}
	}
	return -1
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
