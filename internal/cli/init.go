package cli

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	backend := ctx.Store.Backend()
	if err := backend.Init(); err != nil {
		return err
	}
	if _, err := backend.ReadDocument(); err != nil {
		// First run: write the seed so backups and sync have a document
		if err := ctx.Store.SaveState(ctx.runCtx(), ctx.Store.GetState(ctx.runCtx())); err != nil {
			return err
		}
	}
	ctx.printf("Initialized bidaya storage at: %s\n", backend.GetConfigPath())
	return nil
}
