package settings

import (
	"fmt"

	"github.com/dayspan/dayspan/internal/autostart"
	"github.com/dayspan/dayspan/internal/cli"
	"github.com/dayspan/dayspan/internal/models"
	settingsstore "github.com/dayspan/dayspan/internal/settings"
	"github.com/dayspan/dayspan/internal/utils"
	"github.com/dayspan/dayspan/internal/validation"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Theme        *string `help:"Widget theme (dark, light, nord, mono)."`
	TimeFormat   *string `name:"time-format" help:"Clock format (12h or 24h)."`
	ShowSeconds  *bool   `help:"Show seconds on the clock."`
	ShowPercent  *bool   `help:"Show the progress percentage."`
	RunOnStartup *bool   `help:"Launch the widget at login."`

	WeekdayStart *string `help:"Weekday window start (HH:MM)."`
	WeekdayEnd   *string `help:"Weekday window end (HH:MM)."`
	WeekendStart *string `help:"Weekend window start (HH:MM)."`
	WeekendEnd   *string `help:"Weekend window end (HH:MM)."`

	Override OverrideCmd `cmd:"" help:"Configure a per-weekday override window."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	current := settingsstore.Load(ctx.Store)

	if c.List {
		printSettings(current)
		return nil
	}

	// Build the replacement value first: nothing persists unless every
	// edited field validates.
	updated := current
	changed := false

	if c.Theme != nil {
		if parsed := models.ParseTheme(*c.Theme); string(parsed) != *c.Theme {
			return fmt.Errorf("unknown theme %q (use dark, light, nord, or mono)", *c.Theme)
		}
		updated.Theme = models.ParseTheme(*c.Theme)
		changed = true
	}
	if c.TimeFormat != nil {
		if *c.TimeFormat != string(models.TimeFormat12h) && *c.TimeFormat != string(models.TimeFormat24h) {
			return fmt.Errorf("unknown time format %q (use 12h or 24h)", *c.TimeFormat)
		}
		updated.TimeFormat = models.ParseTimeFormat(*c.TimeFormat)
		changed = true
	}
	if c.ShowSeconds != nil {
		updated.ShowSeconds = *c.ShowSeconds
		changed = true
	}
	if c.ShowPercent != nil {
		updated.ShowPercent = *c.ShowPercent
		changed = true
	}
	if c.RunOnStartup != nil {
		updated.RunOnStartup = *c.RunOnStartup
		changed = true
	}

	if window, edited, err := editWindow(current.Weekday, c.WeekdayStart, c.WeekdayEnd); err != nil {
		return fmt.Errorf("weekday window: %w", err)
	} else if edited {
		updated.Weekday = window
		changed = true
	}
	if window, edited, err := editWindow(current.Weekend, c.WeekendStart, c.WeekendEnd); err != nil {
		return fmt.Errorf("weekend window: %w", err)
	} else if edited {
		updated.Weekend = window
		changed = true
	}

	if !changed {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if err := settingsstore.Save(ctx.Store, updated); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	// Autostart is applied after the save; a host failure is reported but
	// the settings remain persisted.
	if c.RunOnStartup != nil {
		if err := autostart.Apply(ctx.Autostart, updated.RunOnStartup); err != nil {
			fmt.Printf("Warning: settings saved, but the autostart toggle failed: %v\n", err)
			return nil
		}
	}

	fmt.Println("Settings updated successfully.")
	return nil
}

// editWindow merges start/end flag edits into an existing window, validating
// the resulting pair.
func editWindow(current models.DayWindow, start, end *string) (models.DayWindow, bool, error) {
	if start == nil && end == nil {
		return current, false, nil
	}

	startStr := utils.FormatMinutes(current.StartMinutes)
	endStr := utils.FormatMinutes(current.EndMinutes)
	if start != nil {
		startStr = *start
	}
	if end != nil {
		endStr = *end
	}

	window, err := validation.ParseWindow(startStr, endStr)
	if err != nil {
		return models.DayWindow{}, false, err
	}
	return window, true, nil
}

func printSettings(s models.WidgetSettings) {
	fmt.Println("Widget Settings:")
	fmt.Printf("  Theme:          %s\n", s.Theme)
	fmt.Printf("  Time Format:    %s\n", s.TimeFormat)
	fmt.Printf("  Show Seconds:   %t\n", s.ShowSeconds)
	fmt.Printf("  Show Percent:   %t\n", s.ShowPercent)
	fmt.Printf("  Run on Startup: %t\n", s.RunOnStartup)
	fmt.Println("\nSchedule:")
	fmt.Printf("  Weekday:        %s\n", utils.FormatWindow(s.Weekday))
	fmt.Printf("  Weekend:        %s\n", utils.FormatWindow(s.Weekend))
	fmt.Println("\nDay Overrides:")
	for day, o := range s.Overrides {
		value := "off"
		if o.Enabled {
			value = utils.FormatWindow(o.DayWindow)
		}
		fmt.Printf("  %-10s %s\n", utils.WeekdayName(day)+":", value)
	}
}
