// Package scoring computes the daily battery ("Cahaya Amal") from a state
// document. Everything here is a pure function of its input.
package scoring

import (
	"math"

	"github.com/julianstephens/bidaya/internal/constants"
	"github.com/julianstephens/bidaya/internal/models"
	"github.com/julianstephens/bidaya/internal/seed"
)

// Breakdown holds the five sub-scores, each in [0, 100]
type Breakdown struct {
	Prayer    float64 `json:"prayer"`
	Routine   float64 `json:"routine"`
	Muhasabah float64 `json:"muhasabah"`
	Adab      float64 `json:"adab"`
	Wirid     float64 `json:"wirid"`
}

// Result is the full battery computation
type Result struct {
	Battery          int       `json:"battery"`
	Base             float64   `json:"base"`
	Breakdown        Breakdown `json:"breakdown"`
	MaxDiseaseLevel  int       `json:"maxDiseaseLevel"`
	CorruptionFactor float64   `json:"corruptionFactor"`
	CorruptionPct    int       `json:"corruptionPct"`
	HasadWarning     bool      `json:"hasadWarning"`
	HighSeverity     bool      `json:"highSeverity"`
}

// Compute scores the state
func Compute(state models.AppState) Result {
	b := Breakdown{
		Prayer:    PrayerScore(state.TodayPrayer),
		Routine:   ratio(countTasks(state.Tasks), len(state.Tasks)),
		Muhasabah: ratio(countSafe(state.BodyScans), len(state.BodyScans)),
		Adab:      ratio(countProtocols(state.NetworkProtocols), len(state.NetworkProtocols)),
		Wirid:     ratio(countWirid(state.WiridLogs), len(state.WiridLogs)),
	}

	// Conversions keep each product rounded so no architecture fuses them
	// into FMA instructions and drifts across a .5 rounding boundary.
	base := float64(b.Prayer*constants.PrayerWeight) +
		float64(b.Routine*constants.RoutineWeight) +
		float64(b.Muhasabah*constants.MuhasabahWeight) +
		float64(b.Adab*constants.AdabWeight) +
		float64(b.Wirid*constants.WiridWeight)

	maxLevel := MaxDiseaseLevel(state.HeartDiseases)
	factor := CorruptionFactor(maxLevel)

	return Result{
		Battery:          int(math.Round(float64(base * (1 - factor)))),
		Base:             base,
		Breakdown:        b,
		MaxDiseaseLevel:  maxLevel,
		CorruptionFactor: factor,
		CorruptionPct:    int(math.Round(factor * 100)),
		HasadWarning:     diseaseLevel(state.HeartDiseases, seed.HasadID) > constants.HasadWarningLevel,
		HighSeverity:     maxLevel > constants.HighSeverityLevel,
	}
}

// PrayerScore is the share of today's five prayers performed
func PrayerScore(today *models.PrayerLog) float64 {
	if today == nil {
		return 0
	}
	return float64(today.Count()) / constants.PrayersPerDay * 100
}

// MaxDiseaseLevel returns the worst heart disease level, at least 1
func MaxDiseaseLevel(diseases []models.HeartDisease) int {
	max := constants.MinDiseaseLevel
	for _, d := range diseases {
		if d.Level > max {
			max = d.Level
		}
	}
	return max
}

// CorruptionFactor interpolates from 0 at level 1 to CorruptionSeverity at level 10
func CorruptionFactor(maxLevel int) float64 {
	span := float64(constants.MaxDiseaseLevel - constants.MinDiseaseLevel)
	return float64(maxLevel-constants.MinDiseaseLevel) / span * constants.CorruptionSeverity
}

// XPForNextLevel is the cumulative XP at which the level after level begins
func XPForNextLevel(level int) int {
	return level * level * constants.XPPerLevelUnit
}

func diseaseLevel(diseases []models.HeartDisease, id string) int {
	for _, d := range diseases {
		if d.ID == id {
			return d.Level
		}
	}
	return constants.MinDiseaseLevel
}

func ratio(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

func countTasks(tasks []models.Task) int {
	n := 0
	for _, t := range tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

func countSafe(scans []models.BodyPartScan) int {
	n := 0
	for _, b := range scans {
		if !b.ErrorCommitted {
			n++
		}
	}
	return n
}

func countProtocols(protocols []models.NetworkProtocol) int {
	n := 0
	for _, p := range protocols {
		if p.Completed {
			n++
		}
	}
	return n
}

func countWirid(logs []models.WiridLog) int {
	n := 0
	for _, w := range logs {
		if w.Reached() {
			n++
		}
	}
	return n
}
