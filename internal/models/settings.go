package models

// Theme identifies one of the fixed widget color themes.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
	ThemeNord  Theme = "nord"
	ThemeMono  Theme = "mono"
)

// Themes lists every recognized theme, in display order.
var Themes = []Theme{ThemeDark, ThemeLight, ThemeNord, ThemeMono}

// ParseTheme returns the theme for the given identifier, falling back to the
// default theme for anything unrecognized.
func ParseTheme(s string) Theme {
	for _, t := range Themes {
		if string(t) == s {
			return t
		}
	}
	return DefaultTheme
}

// TimeFormatMode selects 12-hour or 24-hour clock rendering.
type TimeFormatMode string

const (
	TimeFormat12h TimeFormatMode = "12h"
	TimeFormat24h TimeFormatMode = "24h"
)

// ParseTimeFormat accepts only the exact 24-hour literal; everything else is
// the 12-hour default.
func ParseTimeFormat(s string) TimeFormatMode {
	if s == string(TimeFormat24h) {
		return TimeFormat24h
	}
	return TimeFormat12h
}

// WidgetSettings is the full widget configuration. A value is constructed
// once per load and replaced wholesale on edit; it is never mutated in place
// between resolver calls.
type WidgetSettings struct {
	Theme        Theme          `json:"theme"`
	TimeFormat   TimeFormatMode `json:"timeFormat"`
	ShowSeconds  bool           `json:"showSeconds"`
	ShowPercent  bool           `json:"showPercent"`
	RunOnStartup bool           `json:"runOnStartup"`
	Weekday      DayWindow      `json:"weekday"`
	Weekend      DayWindow      `json:"weekend"`
	// Overrides is indexed by weekday number, 0=Sunday through 6=Saturday.
	// The positional layout is part of the persisted schema.
	Overrides [7]DayOverride `json:"overrides"`
}

const DefaultTheme = ThemeDark

// Hardcoded default windows: weekdays 09:00-17:00, weekends 10:00-22:00.
var (
	DefaultWeekdayWindow = DayWindow{StartMinutes: 540, EndMinutes: 1020}
	DefaultWeekendWindow = DayWindow{StartMinutes: 600, EndMinutes: 1320}
)

// IsWeekendDay reports whether the weekday index (0=Sunday) is a weekend day.
func IsWeekendDay(day int) bool {
	return day == 0 || day == 6
}

// DefaultWindowForDay returns the default window for the given weekday index.
func DefaultWindowForDay(day int) DayWindow {
	if IsWeekendDay(day) {
		return DefaultWeekendWindow
	}
	return DefaultWeekdayWindow
}

// DefaultSettings returns the hardcoded default configuration. Every override
// carries its day-appropriate default window, disabled.
func DefaultSettings() WidgetSettings {
	s := WidgetSettings{
		Theme:        DefaultTheme,
		TimeFormat:   TimeFormat12h,
		ShowSeconds:  false,
		ShowPercent:  true,
		RunOnStartup: false,
		Weekday:      DefaultWeekdayWindow,
		Weekend:      DefaultWeekendWindow,
	}
	for day := range s.Overrides {
		s.Overrides[day] = DayOverride{DayWindow: DefaultWindowForDay(day)}
	}
	return s
}
