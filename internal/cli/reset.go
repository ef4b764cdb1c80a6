package cli

type ResetCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	s, err := ctx.load()
	if err != nil {
		return err
	}
	if !c.Yes {
		ctx.println("⚠️  WARNING: This resets every checklist, heart level, and your level, XP and streak.")
		ok, err := ctx.confirm("Continue?")
		if err != nil {
			return err
		}
		if !ok {
			ctx.println("Reset cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()
	state, err := s.Reset(ctx.runCtx(), ctx.Store)
	if err != nil {
		return err
	}
	ctx.printf("✓ State reset for %s\n", state.LastResetDate)
	return nil
}
