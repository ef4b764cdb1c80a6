// Package rollover performs the once-per-calendar-day reset of a state
// document and keeps the today prayer pointer in step with the history.
package rollover

import (
	"github.com/julianstephens/bidaya/internal/clock"
	"github.com/julianstephens/bidaya/internal/constants"
	"github.com/julianstephens/bidaya/internal/logger"
	"github.com/julianstephens/bidaya/internal/models"
	"github.com/julianstephens/bidaya/internal/seed"
)

// Initialize returns a copy of state with rollover applied for today
// (YYYY-MM-DD). Running it twice with the same today is a no-op the
// second time.
//
// The streak only grows when exactly one day elapsed since the last reset.
// Any other gap zeroes it; prayer history is not consulted.
func Initialize(state models.AppState, today string) models.AppState {
	out := state.Clone()

	if out.UserStats == nil {
		stats := seed.DefaultStats()
		out.UserStats = &stats
	}

	switch {
	case out.LastResetDate == "":
		out.LastResetDate = today
	case out.LastResetDate != today:
		days, err := clock.DaysBetween(out.LastResetDate, today)
		if err != nil {
			logger.Warn("Unreadable last reset date, resetting streak", "lastResetDate", out.LastResetDate, "error", err)
		}
		if err == nil && days == 1 {
			out.UserStats.Streak++
		} else {
			out.UserStats.Streak = 0
		}
		resetToday(&out)
		out.LastResetDate = today
		logger.Debug("Daily rollover applied", "today", today, "elapsedDays", days, "streak", out.UserStats.Streak)
	}

	return ensureTodayPrayer(out, today)
}

func resetToday(s *models.AppState) {
	for i := range s.Tasks {
		s.Tasks[i].Completed = false
	}
	for i := range s.BodyScans {
		s.BodyScans[i].ErrorCommitted = false
	}
	for i := range s.NetworkProtocols {
		s.NetworkProtocols[i].Completed = false
	}
	for i := range s.WiridLogs {
		s.WiridLogs[i].Count = 0
	}
}

func ensureTodayPrayer(s models.AppState, today string) models.AppState {
	if s.PrayerStats == nil {
		s.PrayerStats = []models.PrayerLog{}
	}

	if i := s.PrayerIndex(today); i >= 0 {
		p := s.PrayerStats[i]
		s.TodayPrayer = &p
		return s
	}

	p := models.NewPrayerLog(today)
	s.PrayerStats = append(s.PrayerStats, p)
	if n := len(s.PrayerStats); n > constants.MaxPrayerHistory {
		s.PrayerStats = s.PrayerStats[n-constants.MaxPrayerHistory:]
	}
	s.TodayPrayer = &p
	return s
}
