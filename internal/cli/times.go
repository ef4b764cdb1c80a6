package cli

import (
	"github.com/julianstephens/bidaya/internal/errors"
	"github.com/julianstephens/bidaya/internal/providers/prayertimes"
)

type TimesCmd struct {
	Lat float64 `help:"Latitude." default:"${latitude}"`
	Lng float64 `help:"Longitude." default:"${longitude}"`
}

func (c *TimesCmd) Run(ctx *Context) error {
	if ctx.PrayerTimes == nil {
		return errors.InvalidInput("no prayer times provider configured")
	}

	now := ctx.Store.Now()
	t, fallback, err := prayertimes.Lookup(ctx.runCtx(), ctx.PrayerTimes, c.Lat, c.Lng, now)
	if err != nil {
		return err
	}
	if fallback {
		ctx.println("⚠ Location lookup failed, showing times for Jakarta")
	}
	ctx.printf("Subuh    %s\n", t.Fajr)
	ctx.printf("Dzuhur   %s\n", t.Dhuhr)
	ctx.printf("Ashar    %s\n", t.Asr)
	ctx.printf("Maghrib  %s\n", t.Maghrib)
	ctx.printf("Isya     %s\n", t.Isha)

	if group, err := prayertimes.ActiveTimeOfDay(t, now); err == nil {
		ctx.printf("\nActive tasks: %s\n", group)
	}
	return nil
}
