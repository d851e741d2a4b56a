package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/dayspan/dayspan/internal/models"
	"github.com/dayspan/dayspan/internal/utils"
	"github.com/dayspan/dayspan/internal/validation"
)

// SettingsFormModel holds the string-typed form state for a settings edit.
// Times stay as HH:MM strings until the whole form validates; nothing is
// persisted from a partially-filled form.
type SettingsFormModel struct {
	Theme        models.Theme
	TimeFormat   models.TimeFormatMode
	ShowSeconds  bool
	ShowPercent  bool
	RunOnStartup bool

	WeekdayStart string
	WeekdayEnd   string
	WeekendStart string
	WeekendEnd   string

	OverrideEnabled [7]bool
	OverrideStart   [7]string
	OverrideEnd     [7]string
}

// NewSettingsFormModel seeds the form from the current settings snapshot.
func NewSettingsFormModel(s models.WidgetSettings) *SettingsFormModel {
	fm := &SettingsFormModel{
		Theme:        s.Theme,
		TimeFormat:   s.TimeFormat,
		ShowSeconds:  s.ShowSeconds,
		ShowPercent:  s.ShowPercent,
		RunOnStartup: s.RunOnStartup,
		WeekdayStart: utils.FormatMinutes(s.Weekday.StartMinutes),
		WeekdayEnd:   utils.FormatMinutes(s.Weekday.EndMinutes),
		WeekendStart: utils.FormatMinutes(s.Weekend.StartMinutes),
		WeekendEnd:   utils.FormatMinutes(s.Weekend.EndMinutes),
	}
	for day, o := range s.Overrides {
		fm.OverrideEnabled[day] = o.Enabled
		fm.OverrideStart[day] = utils.FormatMinutes(o.StartMinutes)
		fm.OverrideEnd[day] = utils.FormatMinutes(o.EndMinutes)
	}
	return fm
}

// ToSettings converts validated form state into a complete settings value.
func (fm *SettingsFormModel) ToSettings() (models.WidgetSettings, error) {
	weekday, err := validation.ParseWindow(fm.WeekdayStart, fm.WeekdayEnd)
	if err != nil {
		return models.WidgetSettings{}, fmt.Errorf("weekday window: %w", err)
	}
	weekend, err := validation.ParseWindow(fm.WeekendStart, fm.WeekendEnd)
	if err != nil {
		return models.WidgetSettings{}, fmt.Errorf("weekend window: %w", err)
	}

	s := models.WidgetSettings{
		Theme:        fm.Theme,
		TimeFormat:   fm.TimeFormat,
		ShowSeconds:  fm.ShowSeconds,
		ShowPercent:  fm.ShowPercent,
		RunOnStartup: fm.RunOnStartup,
		Weekday:      weekday,
		Weekend:      weekend,
	}

	for day := range s.Overrides {
		window, err := validation.ParseWindow(fm.OverrideStart[day], fm.OverrideEnd[day])
		if err != nil {
			return models.WidgetSettings{}, fmt.Errorf("%s override: %w", utils.WeekdayName(day), err)
		}
		s.Overrides[day] = models.DayOverride{
			DayWindow: window,
			Enabled:   fm.OverrideEnabled[day],
		}
	}

	return s, nil
}

func timeInput(title string, value *string, start *string) *huh.Input {
	input := huh.NewInput().Title(title).Value(value)
	if start == nil {
		return input.Validate(validation.ValidateStartTime)
	}
	return input.Validate(func(s string) error {
		return validation.ValidateEndTime(*start, s)
	})
}

// NewSettingsForm creates a new form for editing settings
func NewSettingsForm(fm *SettingsFormModel) *huh.Form {
	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewSelect[models.Theme]().
				Title("Theme").
				Options(
					huh.NewOption("Dark", models.ThemeDark),
					huh.NewOption("Light", models.ThemeLight),
					huh.NewOption("Nord", models.ThemeNord),
					huh.NewOption("Mono", models.ThemeMono),
				).
				Value(&fm.Theme),
			huh.NewSelect[models.TimeFormatMode]().
				Title("Time Format").
				Options(
					huh.NewOption("12-hour", models.TimeFormat12h),
					huh.NewOption("24-hour", models.TimeFormat24h),
				).
				Value(&fm.TimeFormat),
			huh.NewConfirm().
				Title("Show Seconds").
				Value(&fm.ShowSeconds),
			huh.NewConfirm().
				Title("Show Percent").
				Value(&fm.ShowPercent),
			huh.NewConfirm().
				Title("Run on Startup").
				Value(&fm.RunOnStartup),
		),
		huh.NewGroup(
			timeInput("Weekday Start (HH:MM)", &fm.WeekdayStart, nil),
			timeInput("Weekday End (HH:MM)", &fm.WeekdayEnd, &fm.WeekdayStart),
			timeInput("Weekend Start (HH:MM)", &fm.WeekendStart, nil),
			timeInput("Weekend End (HH:MM)", &fm.WeekendEnd, &fm.WeekendStart),
		),
	}

	for day := 0; day < 7; day++ {
		name := utils.WeekdayName(day)
		groups = append(groups, huh.NewGroup(
			huh.NewConfirm().
				Title(name+" Override").
				Value(&fm.OverrideEnabled[day]),
			timeInput(name+" Start (HH:MM)", &fm.OverrideStart[day], nil),
			timeInput(name+" End (HH:MM)", &fm.OverrideEnd[day], &fm.OverrideStart[day]),
		))
	}

	return huh.NewForm(groups...).WithTheme(huh.ThemeDracula())
}
