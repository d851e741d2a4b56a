package settings

import (
	"fmt"

	"github.com/dayspan/dayspan/internal/cli"
	settingsstore "github.com/dayspan/dayspan/internal/settings"
	"github.com/dayspan/dayspan/internal/utils"
	"github.com/dayspan/dayspan/internal/validation"
)

type OverrideCmd struct {
	Day int `arg:"" help:"Weekday index, 0 (Sunday) through 6 (Saturday)."`

	Enabled *bool   `help:"Enable or disable the override for this day."`
	Start   *string `help:"Override window start (HH:MM)."`
	End     *string `help:"Override window end (HH:MM)."`
}

func (c *OverrideCmd) Run(ctx *cli.Context) error {
	if err := validation.ValidateDayIndex(c.Day); err != nil {
		return err
	}

	current := settingsstore.Load(ctx.Store)
	override := current.Overrides[c.Day]

	changed := false
	if window, edited, err := editWindow(override.DayWindow, c.Start, c.End); err != nil {
		return fmt.Errorf("%s override: %w", utils.WeekdayName(c.Day), err)
	} else if edited {
		override.DayWindow = window
		changed = true
	}
	if c.Enabled != nil {
		override.Enabled = *c.Enabled
		changed = true
	}

	if !changed {
		value := "off"
		if override.Enabled {
			value = utils.FormatWindow(override.DayWindow)
		}
		fmt.Printf("%s override: %s\n", utils.WeekdayName(c.Day), value)
		return nil
	}

	updated := current
	updated.Overrides[c.Day] = override

	if err := settingsstore.Save(ctx.Store, updated); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Printf("%s override updated.\n", utils.WeekdayName(c.Day))
	return nil
}
