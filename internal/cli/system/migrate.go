package system

import (
	"fmt"

	"github.com/dayspan/dayspan/internal/cli"
	settingsstore "github.com/dayspan/dayspan/internal/settings"
)

type MigrateCmd struct{}

// Run forces a read-through of the settings chain and persists the result
// under the current schema key, upgrading a legacy store in place.
func (c *MigrateCmd) Run(ctx *cli.Context) error {
	result := settingsstore.LoadWithSource(ctx.Store)

	if result.Source == settingsstore.SourceCurrent {
		fmt.Println("Settings already use the current schema; nothing to do.")
		return nil
	}

	if err := settingsstore.Save(ctx.Store, result.Settings); err != nil {
		return fmt.Errorf("failed to write migrated settings: %w", err)
	}

	switch result.Source {
	case settingsstore.SourceLegacy:
		fmt.Println("Migrated legacy settings to the current schema.")
	default:
		fmt.Println("No usable settings found; wrote defaults under the current schema.")
	}
	return nil
}
