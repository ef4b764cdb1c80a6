// Package commands holds the state transitions a user can trigger. Every
// transition is a pure function: it returns a new state and leaves its
// input untouched. Persisting the result is the caller's job.
package commands

import (
	"math"
	"time"

	"github.com/julianstephens/bidaya/internal/constants"
	"github.com/julianstephens/bidaya/internal/errors"
	"github.com/julianstephens/bidaya/internal/models"
	"github.com/julianstephens/bidaya/internal/seed"
)

// LevelForXP derives the level from cumulative XP: floor(sqrt(xp/100)) + 1
func LevelForXP(xp int) int {
	if xp <= 0 {
		return 1
	}
	return int(math.Floor(math.Sqrt(float64(xp)/constants.XPPerLevelUnit))) + 1
}

type award struct {
	xp         int
	goodDeed   bool
	sinAvoided bool
}

func (a award) apply(s *models.AppState) {
	stats := s.Stats()
	if stats.Level < 1 {
		stats = seed.DefaultStats()
	}
	stats.XP += a.xp
	stats.Level = LevelForXP(stats.XP)
	if a.goodDeed {
		stats.TotalGoodDeeds++
	}
	if a.sinAvoided {
		stats.TotalSinsAvoided++
	}
	s.UserStats = &stats
}

// ToggleTask flips a routine task. Completing it awards XP; un-completing
// takes nothing back.
func ToggleTask(state models.AppState, id string) (models.AppState, error) {
	i := indexOf(len(state.Tasks), func(i int) bool { return state.Tasks[i].ID == id })
	if i < 0 {
		return state, errors.NotFound("tasks", id)
	}

	out := state.Clone()
	out.Tasks[i].Completed = !out.Tasks[i].Completed
	if out.Tasks[i].Completed {
		award{xp: constants.XPTaskCompleted, goodDeed: true}.apply(&out)
	}
	return out, nil
}

// ToggleBodyPart flips the lapse marker of a body part. Recording a lapse
// awards nothing; retracting one counts as repentance.
func ToggleBodyPart(state models.AppState, id string) (models.AppState, error) {
	i := indexOf(len(state.BodyScans), func(i int) bool { return state.BodyScans[i].ID == id })
	if i < 0 {
		return state, errors.NotFound("bodyScans", id)
	}

	out := state.Clone()
	wasCommitted := out.BodyScans[i].ErrorCommitted
	out.BodyScans[i].ErrorCommitted = !wasCommitted
	if wasCommitted {
		award{xp: constants.XPLapseRetracted, sinAvoided: true}.apply(&out)
	}
	return out, nil
}

// SetHeartDiseaseLevel sets a heart disease level. Levels outside
// [1, 10] are rejected.
func SetHeartDiseaseLevel(state models.AppState, id string, level int) (models.AppState, error) {
	if level < constants.MinDiseaseLevel || level > constants.MaxDiseaseLevel {
		return state, errors.InvalidInput("heart disease level %d outside %d..%d", level, constants.MinDiseaseLevel, constants.MaxDiseaseLevel)
	}
	i := indexOf(len(state.HeartDiseases), func(i int) bool { return state.HeartDiseases[i].ID == id })
	if i < 0 {
		return state, errors.NotFound("heartDiseases", id)
	}

	out := state.Clone()
	out.HeartDiseases[i].Level = level
	return out, nil
}

// UpdateWiridCount sets a wirid count and stamps lastUpdated. Crossing the
// target from below awards XP once; dropping back below is not tracked.
func UpdateWiridCount(state models.AppState, id string, count int, now time.Time) (models.AppState, error) {
	if count < 0 {
		return state, errors.InvalidInput("wirid count %d is negative", count)
	}
	i := indexOf(len(state.WiridLogs), func(i int) bool { return state.WiridLogs[i].ID == id })
	if i < 0 {
		return state, errors.NotFound("wiridLogs", id)
	}

	out := state.Clone()
	wasCompleted := out.WiridLogs[i].Reached()
	out.WiridLogs[i].Count = count
	out.WiridLogs[i].LastUpdated = now.UTC().Format(time.RFC3339)
	if !wasCompleted && out.WiridLogs[i].Reached() {
		award{xp: constants.XPWiridTarget, goodDeed: true}.apply(&out)
	}
	return out, nil
}

// AdjustWiridCount moves a wirid count by delta with a floor of zero and no ceiling
func AdjustWiridCount(state models.AppState, id string, delta int, now time.Time) (models.AppState, error) {
	i := indexOf(len(state.WiridLogs), func(i int) bool { return state.WiridLogs[i].ID == id })
	if i < 0 {
		return state, errors.NotFound("wiridLogs", id)
	}
	count := state.WiridLogs[i].Count + delta
	if count < 0 {
		count = 0
	}
	return UpdateWiridCount(state, id, count, now)
}

// TogglePrayer sets a prayer on today's log. The todayPrayer pointer and
// its entry in prayerStats are always written together.
func TogglePrayer(state models.AppState, name models.PrayerName, performed bool) (models.AppState, error) {
	if _, err := models.ParsePrayerName(string(name)); err != nil {
		return state, errors.InvalidInput("%v", err)
	}
	if state.TodayPrayer == nil {
		return state, errors.NotFound("todayPrayer", string(name))
	}

	out := state.Clone()
	was := out.TodayPrayer.Get(name)
	updated := out.TodayPrayer.With(name, performed)
	out.TodayPrayer = &updated

	if i := out.PrayerIndex(updated.Date); i >= 0 {
		out.PrayerStats[i] = updated
	} else {
		out.PrayerStats = append(out.PrayerStats, updated)
		if n := len(out.PrayerStats); n > constants.MaxPrayerHistory {
			out.PrayerStats = out.PrayerStats[n-constants.MaxPrayerHistory:]
		}
	}

	if performed && !was {
		award{xp: constants.XPPrayerPerformed, goodDeed: true}.apply(&out)
	}
	return out, nil
}

// ToggleProtocol flips an adab protocol. Completing it awards XP.
func ToggleProtocol(state models.AppState, id string) (models.AppState, error) {
	i := indexOf(len(state.NetworkProtocols), func(i int) bool { return state.NetworkProtocols[i].ID == id })
	if i < 0 {
		return state, errors.NotFound("networkProtocols", id)
	}

	out := state.Clone()
	out.NetworkProtocols[i].Completed = !out.NetworkProtocols[i].Completed
	if out.NetworkProtocols[i].Completed {
		award{xp: constants.XPProtocolCompleted, goodDeed: true}.apply(&out)
	}
	return out, nil
}

func indexOf(n int, match func(int) bool) int {
	for i := 0; i < n; i++ {
		if match(i) {
			return i
		}
	}
	return -1
}
