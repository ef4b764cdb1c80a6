package constants

const (
	// Battery weights. They must sum to 1.0.
	PrayerWeight    = 0.30
	RoutineWeight   = 0.20
	MuhasabahWeight = 0.20
	AdabWeight      = 0.15
	WiridWeight     = 0.15

	// CorruptionSeverity is the largest share of the base score a heart disease can remove
	CorruptionSeverity = 0.5
	MinDiseaseLevel    = 1
	MaxDiseaseLevel    = 10

	// Presentational thresholds, never persisted
	HasadWarningLevel = 4
	HighSeverityLevel = 7

	PrayersPerDay = 5

	// XP awards
	XPTaskCompleted     = 10
	XPLapseRetracted    = 5
	XPWiridTarget       = 10
	XPPrayerPerformed   = 20
	XPProtocolCompleted = 15
	XPPerLevelUnit      = 100
)

func init() {
	if PrayerWeight+RoutineWeight+MuhasabahWeight+AdabWeight+WiridWeight != 1.0 {
		panic("battery weights must sum to 1.0")
	}
}
