package cli

import (
	"github.com/julianstephens/bidaya/internal/clock"
	"github.com/julianstephens/bidaya/internal/reminder"
)

type DaemonCmd struct {
	Remind string `help:"Cron expression for the daily reminder." default:"${remind}"`
}

func (c *DaemonCmd) Run(ctx *Context) error {
	if err := ctx.Store.Backend().Load(); err != nil {
		return err
	}
	loc, err := clock.LoadLocation(ctx.Config.Timezone)
	if err != nil {
		return err
	}
	d, err := reminder.New(ctx.Store, ctx.Notify, loc, c.Remind)
	if err != nil {
		return err
	}
	ctx.printf("Reminder daemon running (reminder at %q). Press Ctrl+C to stop.\n", c.Remind)
	d.Run(ctx.runCtx())
	return nil
}
