package models

import "fmt"

type PrayerName string

const (
	Subuh   PrayerName = "subuh"
	Dzuhur  PrayerName = "dzuhur"
	Ashar   PrayerName = "ashar"
	Maghrib PrayerName = "maghrib"
	Isya    PrayerName = "isya"
)

// PrayerNames lists the five daily prayers in order
var PrayerNames = []PrayerName{Subuh, Dzuhur, Ashar, Maghrib, Isya}

// ParsePrayerName validates a prayer name
func ParsePrayerName(s string) (PrayerName, error) {
	for _, p := range PrayerNames {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown prayer %q", s)
}

// PrayerLog holds one calendar day of prayers. Values are 0 or 1.
type PrayerLog struct {
	Date    string `json:"date"` // YYYY-MM-DD format
	Subuh   int    `json:"subuh"`
	Dzuhur  int    `json:"dzuhur"`
	Ashar   int    `json:"ashar"`
	Maghrib int    `json:"maghrib"`
	Isya    int    `json:"isya"`
}

// NewPrayerLog returns a zeroed log for the given date
func NewPrayerLog(date string) PrayerLog {
	return PrayerLog{Date: date}
}

// Get returns whether the named prayer was performed
func (p PrayerLog) Get(name PrayerName) bool {
	switch name {
	case Subuh:
		return p.Subuh != 0
	case Dzuhur:
		return p.Dzuhur != 0
	case Ashar:
		return p.Ashar != 0
	case Maghrib:
		return p.Maghrib != 0
	case Isya:
		return p.Isya != 0
	}
	return false
}

// With returns a copy of the log with the named prayer set
func (p PrayerLog) With(name PrayerName, performed bool) PrayerLog {
	v := 0
	if performed {
		v = 1
	}
	switch name {
	case Subuh:
		p.Subuh = v
	case Dzuhur:
		p.Dzuhur = v
	case Ashar:
		p.Ashar = v
	case Maghrib:
		p.Maghrib = v
	case Isya:
		p.Isya = v
	}
	return p
}

// Count returns how many of the five prayers were performed
func (p PrayerLog) Count() int {
	n := 0
	for _, name := range PrayerNames {
		if p.Get(name) {
			n++
		}
	}
	return n
}
