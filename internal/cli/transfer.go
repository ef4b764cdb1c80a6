package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/bidaya/internal/backup"
	"github.com/julianstephens/bidaya/internal/rollover"
	"github.com/julianstephens/bidaya/internal/seed"
)

type ExportCmd struct {
	Output string `short:"o" help:"Output file, or - for stdout. Defaults to bidaya-backup-<date>.json."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	s, err := ctx.load()
	if err != nil {
		return err
	}
	state := s.State()

	if c.Output == "-" {
		return backup.Export(state, ctx.out())
	}
	path := c.Output
	if path == "" {
		path = backup.ExportFileName(ctx.Store.Today())
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()
	if err := backup.Export(state, f); err != nil {
		return err
	}
	ctx.printf("✓ Exported to %s\n", path)
	return nil
}

type ImportCmd struct {
	File string `arg:"" help:"Exported JSON file, or - for stdin."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	s, err := ctx.load()
	if err != nil {
		return err
	}

	var r io.Reader
	if c.File == "-" {
		r = ctx.In
		if r == nil {
			r = os.Stdin
		}
	} else {
		f, err := os.Open(c.File)
		if err != nil {
			return fmt.Errorf("failed to open import file: %w", err)
		}
		defer f.Close()
		r = f
	}

	imported, err := backup.Import(r, seed.Default(ctx.Store.Now()))
	if err != nil {
		return err
	}
	imported = rollover.Initialize(imported, ctx.Store.Today())

	ctx.PerformAutomaticBackup()
	if err := ctx.Store.SaveState(ctx.runCtx(), imported); err != nil {
		return err
	}
	s.Replace(imported)
	ctx.printf("✓ Imported %s\n", c.File)
	return nil
}
