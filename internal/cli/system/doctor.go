package system

import (
	"fmt"

	"github.com/dayspan/dayspan/internal/cli"
	settingsstore "github.com/dayspan/dayspan/internal/settings"
)

type DoctorCmd struct{}

// Run performs read-only health checks: storage reachability, which schema
// the settings load from, and the autostart state.
func (c *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("dayspan doctor")
	fmt.Printf("  Storage: %s\n", ctx.Store.GetConfigPath())

	result := settingsstore.LoadWithSource(ctx.Store)
	switch result.Source {
	case settingsstore.SourceCurrent:
		fmt.Println("  Settings: OK (current schema)")
	case settingsstore.SourceLegacy:
		fmt.Println("  Settings: legacy schema (run 'dayspan migrate' to upgrade)")
	default:
		fmt.Println("  Settings: none or malformed, using defaults")
	}

	enabled, err := ctx.Autostart.IsEnabled()
	if err != nil {
		fmt.Printf("  Autostart: unavailable (%v)\n", err)
	} else {
		fmt.Printf("  Autostart: host=%t, configured=%t\n", enabled, result.Settings.RunOnStartup)
		if enabled != result.Settings.RunOnStartup {
			fmt.Println("  Autostart state differs from settings; it will be reconciled on the next save.")
		}
	}

	return nil
}
