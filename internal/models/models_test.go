package models

import (
	"encoding/json"
	"testing"
)

func TestDayWindowValid(t *testing.T) {
	tests := []struct {
		name   string
		window DayWindow
		want   bool
	}{
		{"normal window", DayWindow{StartMinutes: 540, EndMinutes: 1020}, true},
		{"crosses midnight", DayWindow{StartMinutes: 1380, EndMinutes: 60}, true},
		{"starts at midnight", DayWindow{StartMinutes: 0, EndMinutes: 720}, true},
		{"last valid minute", DayWindow{StartMinutes: 1439, EndMinutes: 0}, true},
		{"equal endpoints", DayWindow{StartMinutes: 540, EndMinutes: 540}, false},
		{"start too large", DayWindow{StartMinutes: 1440, EndMinutes: 60}, false},
		{"end too large", DayWindow{StartMinutes: 60, EndMinutes: 1440}, false},
		{"negative start", DayWindow{StartMinutes: -1, EndMinutes: 60}, false},
		{"negative end", DayWindow{StartMinutes: 60, EndMinutes: -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.window.Valid(); got != tt.want {
				t.Errorf("Valid(%+v) = %v, want %v", tt.window, got, tt.want)
			}
		})
	}
}

func TestDayWindowCrossesMidnight(t *testing.T) {
	tests := []struct {
		name   string
		window DayWindow
		want   bool
	}{
		{"end after start", DayWindow{StartMinutes: 540, EndMinutes: 1020}, false},
		{"end before start", DayWindow{StartMinutes: 1380, EndMinutes: 60}, true},
		{"end equals start", DayWindow{StartMinutes: 540, EndMinutes: 540}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.window.CrossesMidnight(); got != tt.want {
				t.Errorf("CrossesMidnight(%+v) = %v, want %v", tt.window, got, tt.want)
			}
		})
	}
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		input string
		want  Theme
	}{
		{"dark", ThemeDark},
		{"light", ThemeLight},
		{"nord", ThemeNord},
		{"mono", ThemeMono},
		{"DARK", DefaultTheme},
		{"solarized", DefaultTheme},
		{"", DefaultTheme},
	}

	for _, tt := range tests {
		if got := ParseTheme(tt.input); got != tt.want {
			t.Errorf("ParseTheme(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseTimeFormat(t *testing.T) {
	tests := []struct {
		input string
		want  TimeFormatMode
	}{
		{"24h", TimeFormat24h},
		{"12h", TimeFormat12h},
		{"24H", TimeFormat12h},
		{"24", TimeFormat12h},
		{"", TimeFormat12h},
	}

	for _, tt := range tests {
		if got := ParseTimeFormat(tt.input); got != tt.want {
			t.Errorf("ParseTimeFormat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.Theme != ThemeDark {
		t.Errorf("Theme = %v, want %v", s.Theme, ThemeDark)
	}
	if s.TimeFormat != TimeFormat12h {
		t.Errorf("TimeFormat = %v, want %v", s.TimeFormat, TimeFormat12h)
	}
	if !s.ShowPercent {
		t.Error("ShowPercent = false, want true")
	}
	if s.ShowSeconds || s.RunOnStartup {
		t.Error("ShowSeconds and RunOnStartup should default to false")
	}
	if s.Weekday != DefaultWeekdayWindow {
		t.Errorf("Weekday = %+v, want %+v", s.Weekday, DefaultWeekdayWindow)
	}
	if s.Weekend != DefaultWeekendWindow {
		t.Errorf("Weekend = %+v, want %+v", s.Weekend, DefaultWeekendWindow)
	}
	for day, o := range s.Overrides {
		if o.Enabled {
			t.Errorf("Overrides[%d].Enabled = true, want false", day)
		}
		if o.DayWindow != DefaultWindowForDay(day) {
			t.Errorf("Overrides[%d] = %+v, want %+v", day, o.DayWindow, DefaultWindowForDay(day))
		}
	}
}

func TestDefaultWindowForDay(t *testing.T) {
	for day := 0; day < 7; day++ {
		want := DefaultWeekdayWindow
		if day == 0 || day == 6 {
			want = DefaultWeekendWindow
		}
		if got := DefaultWindowForDay(day); got != want {
			t.Errorf("DefaultWindowForDay(%d) = %+v, want %+v", day, got, want)
		}
	}
}

func TestDayOverrideJSONShape(t *testing.T) {
	// The override's window fields serialize flat alongside the enabled
	// flag; the persisted layout depends on it.
	data, err := json.Marshal(DayOverride{
		DayWindow: DayWindow{StartMinutes: 60, EndMinutes: 120},
		Enabled:   true,
	})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"startMinutes":60,"endMinutes":120,"enabled":true}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}
