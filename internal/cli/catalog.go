package cli

import (
	"fmt"

	"github.com/julianstephens/bidaya/internal/commands"
	"github.com/julianstephens/bidaya/internal/constants"
	"github.com/julianstephens/bidaya/internal/errors"
	"github.com/julianstephens/bidaya/internal/models"
	"github.com/julianstephens/bidaya/internal/providers/prayertimes"
)

type TaskToggleCmd struct {
	ID     string `arg:"" help:"Task id (t1..t10)."`
	Strict bool   `help:"Refuse when the task's prayer-time window is closed."`
}

func (c *TaskToggleCmd) Run(ctx *Context) error {
	s, err := ctx.load()
	if err != nil {
		return err
	}
	if c.Strict {
		if err := checkWindow(ctx, s.State(), c.ID); err != nil {
			return err
		}
	}
	state, err := ctx.execute(commands.ToggleTaskCmd{ID: c.ID})
	if err != nil {
		return err
	}
	for _, t := range state.Tasks {
		if t.ID == c.ID {
			ctx.printf("%s %s\n", checkbox(t.Completed), t.Title)
		}
	}
	return nil
}

// checkWindow refuses to tick a task outside its time-of-day group when
// prayer times are known
func checkWindow(ctx *Context, state models.AppState, id string) error {
	if ctx.PrayerTimes == nil {
		return nil
	}
	var group models.TimeOfDay
	for _, t := range state.Tasks {
		if t.ID == id {
			group = t.TimeOfDay
		}
	}
	if group == "" {
		return errors.NotFound("tasks", id)
	}
	times, _, err := prayertimes.Lookup(ctx.runCtx(), ctx.PrayerTimes, ctx.Config.Latitude, ctx.Config.Longitude, ctx.Store.Now())
	if err != nil {
		// Unknown times leave every group open
		return nil
	}
	if !prayertimes.IsGroupActive(&times, group, ctx.Store.Now()) {
		return fmt.Errorf("%w: %s tasks are not open now", errors.ErrInvalidInput, group)
	}
	return nil
}

type TaskListCmd struct{}

func (c *TaskListCmd) Run(ctx *Context) error {
	s, err := ctx.load()
	if err != nil {
		return err
	}
	state := s.State()
	for _, group := range models.TimesOfDay {
		ctx.printf("%s\n", group)
		for _, t := range state.Tasks {
			if t.TimeOfDay == group {
				ctx.printf("  %s %-4s %s\n", checkbox(t.Completed), t.ID, t.Title)
			}
		}
	}
	return nil
}

type ScanToggleCmd struct {
	ID string `arg:"" help:"Body part id (b1..b7)."`
}

func (c *ScanToggleCmd) Run(ctx *Context) error {
	state, err := ctx.execute(commands.ToggleBodyPartCmd{ID: c.ID})
	if err != nil {
		return err
	}
	for _, b := range state.BodyScans {
		if b.ID == c.ID {
			ctx.printf("%s %s\n", lapse(b.ErrorCommitted), b.Part)
		}
	}
	return nil
}

type ScanListCmd struct{}

func (c *ScanListCmd) Run(ctx *Context) error {
	s, err := ctx.load()
	if err != nil {
		return err
	}
	for _, b := range s.State().BodyScans {
		ctx.printf("%s %-3s %s (%s)\n", lapse(b.ErrorCommitted), b.ID, b.Part, b.Arabic)
	}
	return nil
}

func lapse(committed bool) string {
	if committed {
		return "✗ lapse"
	}
	return "✓ safe "
}

type HeartSetCmd struct {
	ID    string `arg:"" help:"Heart disease id (h1..h3)."`
	Level int    `arg:"" help:"Severity from 1 to 10."`
}

func (c *HeartSetCmd) Run(ctx *Context) error {
	state, err := ctx.execute(commands.SetHeartDiseaseLevelCmd{ID: c.ID, Level: c.Level})
	if err != nil {
		return err
	}
	for _, h := range state.HeartDiseases {
		if h.ID == c.ID {
			ctx.printf("%s: %d/%d\n", h.Name, h.Level, constants.MaxDiseaseLevel)
		}
	}
	return nil
}

type HeartListCmd struct{}

func (c *HeartListCmd) Run(ctx *Context) error {
	s, err := ctx.load()
	if err != nil {
		return err
	}
	for _, h := range s.State().HeartDiseases {
		ctx.printf("%-3s %-6s %2d/%d  %s\n", h.ID, h.Name, h.Level, constants.MaxDiseaseLevel, h.Description)
	}
	return nil
}

type WiridSetCmd struct {
	ID    string `arg:"" help:"Wirid id (w1..w3)."`
	Count int    `arg:"" help:"New count."`
}

func (c *WiridSetCmd) Run(ctx *Context) error {
	return applyWirid(ctx, commands.UpdateWiridCountCmd{ID: c.ID, Count: c.Count, Now: ctx.Store.Now})
}

type WiridIncCmd struct {
	ID string `arg:"" help:"Wirid id (w1..w3)."`
	By int    `help:"Amount to add." default:"1"`
}

func (c *WiridIncCmd) Run(ctx *Context) error {
	if c.By <= 0 {
		return errors.InvalidInput("--by must be positive")
	}
	return applyWirid(ctx, commands.UpdateWiridCountCmd{ID: c.ID, Delta: c.By, Now: ctx.Store.Now})
}

type WiridDecCmd struct {
	ID string `arg:"" help:"Wirid id (w1..w3)."`
	By int    `help:"Amount to subtract." default:"1"`
}

func (c *WiridDecCmd) Run(ctx *Context) error {
	if c.By <= 0 {
		return errors.InvalidInput("--by must be positive")
	}
	return applyWirid(ctx, commands.UpdateWiridCountCmd{ID: c.ID, Delta: -c.By, Now: ctx.Store.Now})
}

func applyWirid(ctx *Context, cmd commands.UpdateWiridCountCmd) error {
	state, err := ctx.execute(cmd)
	if err != nil {
		return err
	}
	for _, w := range state.WiridLogs {
		if w.ID == cmd.ID {
			ctx.printf("%s: %d/%d\n", w.Name, w.Count, w.Target)
		}
	}
	return nil
}

type WiridListCmd struct{}

func (c *WiridListCmd) Run(ctx *Context) error {
	s, err := ctx.load()
	if err != nil {
		return err
	}
	for _, w := range s.State().WiridLogs {
		ctx.printf("%s %-3s %-20s %d/%d\n", checkbox(w.Reached()), w.ID, w.Name, w.Count, w.Target)
	}
	return nil
}

type PrayerSetCmd struct {
	Prayer string `arg:"" enum:"subuh,dzuhur,ashar,maghrib,isya" help:"Prayer name."`
	Undo   bool   `help:"Mark the prayer as not performed."`
}

func (c *PrayerSetCmd) Run(ctx *Context) error {
	name, err := models.ParsePrayerName(c.Prayer)
	if err != nil {
		return errors.InvalidInput("%v", err)
	}
	state, err := ctx.execute(commands.TogglePrayerCmd{Prayer: name, Performed: !c.Undo})
	if err != nil {
		return err
	}
	ctx.println(prayerSummary(*state.TodayPrayer))
	return nil
}

type PrayerShowCmd struct {
	Days int `help:"Number of past days to show." default:"7"`
}

func (c *PrayerShowCmd) Run(ctx *Context) error {
	s, err := ctx.load()
	if err != nil {
		return err
	}
	stats := s.State().PrayerStats
	start := len(stats) - c.Days
	if start < 0 {
		start = 0
	}
	for i := len(stats) - 1; i >= start; i-- {
		ctx.printf("%s  %s  (%d/%d)\n", stats[i].Date, prayerSummary(stats[i]), stats[i].Count(), constants.PrayersPerDay)
	}
	return nil
}

type AdabToggleCmd struct {
	ID string `arg:"" help:"Protocol id (np1..np6)."`
}

func (c *AdabToggleCmd) Run(ctx *Context) error {
	state, err := ctx.execute(commands.ToggleProtocolCmd{ID: c.ID})
	if err != nil {
		return err
	}
	for _, p := range state.NetworkProtocols {
		if p.ID == c.ID {
			ctx.printf("%s %s\n", checkbox(p.Completed), p.Title)
		}
	}
	return nil
}

type AdabListCmd struct{}

func (c *AdabListCmd) Run(ctx *Context) error {
	s, err := ctx.load()
	if err != nil {
		return err
	}
	for _, category := range []models.ProtocolCategory{models.Vertical, models.Horizontal} {
		ctx.printf("%s\n", category)
		for _, p := range s.State().NetworkProtocols {
			if p.Category == category {
				ctx.printf("  %s %-4s %-9s %s\n", checkbox(p.Completed), p.ID, p.Target, p.Title)
			}
		}
	}
	return nil
}
