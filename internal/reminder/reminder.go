// Package reminder runs the background schedule: the midnight rollover of
// the stored document and a daily reminder of what is still open.
package reminder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/julianstephens/bidaya/internal/logger"
	"github.com/julianstephens/bidaya/internal/models"
	"github.com/julianstephens/bidaya/internal/scoring"
	"github.com/julianstephens/bidaya/internal/storage"
)

// RolloverSpec fires at the start of every local day
const RolloverSpec = "@midnight"

type Daemon struct {
	store  *storage.StateStore
	notify storage.NotifyFunc
	cron   *cron.Cron
}

// New schedules the rollover and a reminder at remindSpec, a standard
// five-field cron expression evaluated in loc.
func New(store *storage.StateStore, notify storage.NotifyFunc, loc *time.Location, remindSpec string) (*Daemon, error) {
	if _, err := cron.ParseStandard(remindSpec); err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", remindSpec, err)
	}
	d := &Daemon{
		store:  store,
		notify: notify,
		cron:   cron.New(cron.WithLocation(loc)),
	}
	if _, err := d.cron.AddFunc(RolloverSpec, func() { d.Rollover(context.Background()) }); err != nil {
		return nil, err
	}
	if _, err := d.cron.AddFunc(remindSpec, func() { d.Remind(context.Background()) }); err != nil {
		return nil, err
	}
	return d, nil
}

// Run blocks until ctx is cancelled, then waits for running jobs
func (d *Daemon) Run(ctx context.Context) {
	d.Rollover(ctx)
	d.cron.Start()
	logger.Info("Reminder daemon started", "jobs", len(d.cron.Entries()))
	<-ctx.Done()
	<-d.cron.Stop().Done()
	d.store.Wait()
	logger.Info("Reminder daemon stopped")
}

// Rollover persists the document as of today so other devices see the new day
func (d *Daemon) Rollover(ctx context.Context) {
	state := d.store.GetState(ctx)
	if err := d.store.SaveState(ctx, state); err != nil {
		logger.Error("Scheduled rollover failed", "error", err)
		return
	}
	logger.Debug("Scheduled rollover saved", "date", state.LastResetDate)
}

// Remind sends the summary of today's open items and returns it
func (d *Daemon) Remind(ctx context.Context) string {
	msg := Summary(d.store.GetState(ctx))
	if d.notify != nil {
		d.notify(msg)
	}
	return msg
}

// Summary describes the battery and what is left to do today
func Summary(state models.AppState) string {
	r := scoring.Compute(state)

	var open []string
	if state.TodayPrayer != nil {
		if n := len(models.PrayerNames) - state.TodayPrayer.Count(); n > 0 {
			open = append(open, plural(n, "prayer"))
		}
	}
	tasks := 0
	for _, t := range state.Tasks {
		if !t.Completed {
			tasks++
		}
	}
	if tasks > 0 {
		open = append(open, plural(tasks, "task"))
	}
	wirid := 0
	for _, w := range state.WiridLogs {
		if !w.Reached() {
			wirid++
		}
	}
	if wirid > 0 {
		open = append(open, plural(wirid, "wirid"))
	}

	if len(open) == 0 {
		return fmt.Sprintf("Cahaya Amal %d%%. Everything is done today, alhamdulillah.", r.Battery)
	}
	return fmt.Sprintf("Cahaya Amal %d%%. Still open: %s. Time for muhasabah.", r.Battery, strings.Join(open, ", "))
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
