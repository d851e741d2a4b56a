package system

import (
	"fmt"

	"github.com/dayspan/dayspan/internal/cli"
	"github.com/dayspan/dayspan/internal/models"
	settingsstore "github.com/dayspan/dayspan/internal/settings"
)

type InitCmd struct {
	Force bool `help:"Reinitialize even if storage already exists."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Init(); err != nil {
		if !c.Force {
			return err
		}
		// Force mode tolerates an existing store and just rewrites the
		// defaults into it.
		if err := ctx.Store.Load(); err != nil {
			return err
		}
	}

	if err := settingsstore.Save(ctx.Store, models.DefaultSettings()); err != nil {
		return fmt.Errorf("failed to write default settings: %w", err)
	}

	fmt.Printf("Initialized dayspan storage at %s\n", ctx.Store.GetConfigPath())
	return nil
}
