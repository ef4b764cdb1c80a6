package cli

import (
	"encoding/json"
	"strings"

	"github.com/julianstephens/bidaya/internal/models"
	"github.com/julianstephens/bidaya/internal/scoring"
)

type StatusCmd struct {
	JSON bool `help:"Print the score as JSON."`
}

func (c *StatusCmd) Run(ctx *Context) error {
	s, err := ctx.load()
	if err != nil {
		return err
	}
	state := s.State()
	result := scoring.Compute(state)

	if c.JSON {
		enc := json.NewEncoder(ctx.out())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	stats := state.Stats()
	ctx.printf("Cahaya Amal: %d%% %s\n", result.Battery, bar(result.Battery))
	ctx.printf("Date: %s\n\n", state.LastResetDate)

	ctx.println("Breakdown:")
	ctx.printf("  Prayer     %5.1f\n", result.Breakdown.Prayer)
	ctx.printf("  Routine    %5.1f\n", result.Breakdown.Routine)
	ctx.printf("  Muhasabah  %5.1f\n", result.Breakdown.Muhasabah)
	ctx.printf("  Adab       %5.1f\n", result.Breakdown.Adab)
	ctx.printf("  Wirid      %5.1f\n", result.Breakdown.Wirid)
	ctx.printf("  Base %.1f, heart corruption -%d%%\n\n", result.Base, result.CorruptionPct)

	ctx.printf("Level %d  XP %d/%d  Streak %d\n", stats.Level, stats.XP, scoring.XPForNextLevel(stats.Level), stats.Streak)
	ctx.printf("Good deeds %d  Sins avoided %d\n", stats.TotalGoodDeeds, stats.TotalSinsAvoided)

	if result.HasadWarning {
		ctx.println("\n⚠ Hasad is burning your deeds. Make du'a for the one you envy.")
	}
	if result.HighSeverity {
		ctx.printf("⚠ A heart disease is at level %d. Run 'bidaya advice'.\n", result.MaxDiseaseLevel)
	}
	return nil
}

func bar(pct int) string {
	filled := pct / 5
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", 20-filled) + "]"
}

// prayerSummary renders a day's prayers as "subuh ✓ dzuhur ✗ ..."
func prayerSummary(p models.PrayerLog) string {
	var parts []string
	for _, name := range models.PrayerNames {
		mark := "✗"
		if p.Get(name) {
			mark = "✓"
		}
		parts = append(parts, string(name)+" "+mark)
	}
	return strings.Join(parts, "  ")
}
