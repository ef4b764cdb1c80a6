package cli

import (
	"strings"

	"github.com/julianstephens/bidaya/internal/errors"
)

type AdviceCmd struct {
	Ask []string `arg:"" optional:"" help:"Ask the mentor a question instead of receiving today's nasihat."`
}

func (c *AdviceCmd) Run(ctx *Context) error {
	if ctx.Advice == nil {
		return errors.InvalidInput("no advice provider configured")
	}
	if len(c.Ask) > 0 {
		reply, err := ctx.Advice.Reply(ctx.runCtx(), strings.Join(c.Ask, " "), nil)
		if err != nil {
			return err
		}
		ctx.println(reply)
		return nil
	}

	s, err := ctx.load()
	if err != nil {
		return err
	}
	a, err := ctx.Advice.Nasihat(ctx.runCtx(), s.State())
	if err != nil {
		return err
	}
	ctx.println(a.Arabic)
	ctx.println()
	ctx.println(a.Translation)
	return nil
}
