// Package migration upgrades persisted state documents to the current
// schema and applies the numbered SQL scripts of the database backends.
package migration

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/bidaya/internal/errors"
	"github.com/julianstephens/bidaya/internal/logger"
	"github.com/julianstephens/bidaya/internal/models"
	"github.com/julianstephens/bidaya/internal/seed"
)

// Decode parses a persisted document and lays it over base, which is
// normally a fresh seed. Keys absent from the document keep their base
// value. Catalog arrays are merged by id: persisted entries win, seed
// entries the document lacks are appended in seed order, and unknown ids
// are kept. A repeated id keeps its first entry.
//
// The result has not been rolled over.
func Decode(data []byte, base models.AppState) (models.AppState, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return base, fmt.Errorf("%w: %v", errors.ErrFormat, err)
	}
	if fields == nil {
		return base, fmt.Errorf("%w: document is null", errors.ErrFormat)
	}

	version := 0
	if raw, ok := fields["schemaVersion"]; ok {
		if err := json.Unmarshal(raw, &version); err != nil {
			return base, fmt.Errorf("%w: schemaVersion: %v", errors.ErrFormat, err)
		}
	}
	if version > seed.SchemaVersion {
		return base, fmt.Errorf("%w: document version %d is newer than supported version %d", errors.ErrFormat, version, seed.SchemaVersion)
	}

	out := base.Clone()
	var parsed models.AppState
	decode := func(key string, dst any) error {
		raw, ok := fields[key]
		if !ok || string(raw) == "null" {
			return nil
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return fmt.Errorf("%w: %s: %v", errors.ErrFormat, key, err)
		}
		return nil
	}

	for key, dst := range map[string]any{
		"tasks":            &parsed.Tasks,
		"bodyScans":        &parsed.BodyScans,
		"heartDiseases":    &parsed.HeartDiseases,
		"wiridLogs":        &parsed.WiridLogs,
		"networkProtocols": &parsed.NetworkProtocols,
		"prayerStats":      &parsed.PrayerStats,
		"userStats":        &parsed.UserStats,
		"lastResetDate":    &parsed.LastResetDate,
	} {
		if err := decode(key, dst); err != nil {
			return base, err
		}
	}

	// todayPrayer may legitimately be null; it is rebuilt by rollover
	if raw, ok := fields["todayPrayer"]; ok {
		if err := json.Unmarshal(raw, &parsed.TodayPrayer); err != nil {
			return base, fmt.Errorf("%w: todayPrayer: %v", errors.ErrFormat, err)
		}
		out.TodayPrayer = parsed.TodayPrayer
	}

	out.Tasks = mergeByID(parsed.Tasks, out.Tasks, func(t models.Task) string { return t.ID })
	out.BodyScans = mergeByID(parsed.BodyScans, out.BodyScans, func(b models.BodyPartScan) string { return b.ID })
	out.HeartDiseases = mergeByID(parsed.HeartDiseases, out.HeartDiseases, func(h models.HeartDisease) string { return h.ID })
	out.WiridLogs = mergeByID(parsed.WiridLogs, out.WiridLogs, func(w models.WiridLog) string { return w.ID })
	out.NetworkProtocols = mergeByID(parsed.NetworkProtocols, out.NetworkProtocols, func(p models.NetworkProtocol) string { return p.ID })

	if _, ok := fields["prayerStats"]; ok && parsed.PrayerStats != nil {
		out.PrayerStats = parsed.PrayerStats
	}
	if parsed.UserStats != nil {
		out.UserStats = parsed.UserStats
	}
	if _, ok := fields["lastResetDate"]; ok {
		out.LastResetDate = parsed.LastResetDate
	}

	out.SchemaVersion = seed.SchemaVersion
	return out, nil
}

func mergeByID[T any](persisted, defaults []T, id func(T) string) []T {
	if persisted == nil {
		return defaults
	}
	seen := make(map[string]bool, len(persisted))
	out := make([]T, 0, len(persisted)+len(defaults))
	for _, p := range persisted {
		if seen[id(p)] {
			logger.Warn("Dropping repeated catalog entry", "id", id(p))
			continue
		}
		seen[id(p)] = true
		out = append(out, p)
	}
	for _, d := range defaults {
		if !seen[id(d)] {
			out = append(out, d)
		}
	}
	return out
}
