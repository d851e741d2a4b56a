package settings

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/dayspan/dayspan/internal/constants"
	"github.com/dayspan/dayspan/internal/models"
)

// memStore is an in-memory Provider for exercising the parse chain.
type memStore struct {
	values  map[string]string
	failSet bool
}

func newMemStore() *memStore {
	return &memStore{values: make(map[string]string)}
}

func (s *memStore) Init() error  { return nil }
func (s *memStore) Load() error  { return nil }
func (s *memStore) Close() error { return nil }

func (s *memStore) Get(key string) (string, bool, error) {
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *memStore) Set(key, value string) error {
	if s.failSet {
		return fmt.Errorf("disk full")
	}
	s.values[key] = value
	return nil
}

func (s *memStore) Delete(key string) error {
	delete(s.values, key)
	return nil
}

func (s *memStore) GetConfigPath() string { return "mem" }

func TestLoadDefaultsWhenEmpty(t *testing.T) {
	store := newMemStore()

	result := LoadWithSource(store)
	if result.Source != SourceDefaults {
		t.Errorf("Source = %v, want %v", result.Source, SourceDefaults)
	}
	if !reflect.DeepEqual(result.Settings, models.DefaultSettings()) {
		t.Errorf("Load() = %+v, want defaults", result.Settings)
	}
}

func TestLoadCorruptCurrentFallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "not json"},
		{"json array", "[1,2,3]"},
		{"json string", `"hello"`},
		{"empty string", ""},
		{"null", "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			store.values[constants.SettingsKeyCurrent] = tt.data

			result := LoadWithSource(store)
			if result.Source != SourceDefaults {
				t.Errorf("Source = %v, want %v", result.Source, SourceDefaults)
			}
			if !reflect.DeepEqual(result.Settings, models.DefaultSettings()) {
				t.Errorf("Load() = %+v, want defaults", result.Settings)
			}
		})
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	store := newMemStore()

	s := models.DefaultSettings()
	s.Theme = models.ThemeNord
	s.TimeFormat = models.TimeFormat24h
	s.ShowSeconds = true
	s.ShowPercent = false
	s.RunOnStartup = true
	s.Weekday = models.DayWindow{StartMinutes: 480, EndMinutes: 990}
	s.Weekend = models.DayWindow{StartMinutes: 1380, EndMinutes: 60} // crosses midnight
	s.Overrides[3] = models.DayOverride{
		DayWindow: models.DayWindow{StartMinutes: 600, EndMinutes: 720},
		Enabled:   true,
	}

	if err := Save(store, s); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	result := LoadWithSource(store)
	if result.Source != SourceCurrent {
		t.Fatalf("Source = %v, want %v", result.Source, SourceCurrent)
	}
	if !reflect.DeepEqual(result.Settings, s) {
		t.Errorf("Load() = %+v, want %+v", result.Settings, s)
	}
}

func TestSavePropagatesWriteFailure(t *testing.T) {
	store := newMemStore()
	store.failSet = true

	if err := Save(store, models.DefaultSettings()); err == nil {
		t.Error("Save() error = nil, want write failure")
	}
}

func TestLoadLegacyMigration(t *testing.T) {
	store := newMemStore()
	store.values[constants.SettingsKeyLegacy] = `{"startMinutes":480,"endMinutes":1020}`

	result := LoadWithSource(store)
	if result.Source != SourceLegacy {
		t.Fatalf("Source = %v, want %v", result.Source, SourceLegacy)
	}

	want := models.DefaultSettings()
	window := models.DayWindow{StartMinutes: 480, EndMinutes: 1020}
	want.Weekday = window
	want.Weekend = window
	for day := range want.Overrides {
		want.Overrides[day] = models.DayOverride{DayWindow: window}
	}

	if !reflect.DeepEqual(result.Settings, want) {
		t.Errorf("Load() = %+v, want %+v", result.Settings, want)
	}
}

func TestLoadLegacyRejected(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "{{"},
		{"missing end", `{"startMinutes":480}`},
		{"equal endpoints", `{"startMinutes":480,"endMinutes":480}`},
		{"out of range", `{"startMinutes":480,"endMinutes":1440}`},
		{"negative", `{"startMinutes":-1,"endMinutes":600}`},
		{"non-numeric", `{"startMinutes":"soon","endMinutes":600}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			store.values[constants.SettingsKeyLegacy] = tt.data

			result := LoadWithSource(store)
			if result.Source != SourceDefaults {
				t.Errorf("Source = %v, want %v", result.Source, SourceDefaults)
			}
		})
	}
}

func TestLoadCurrentPreferredOverLegacy(t *testing.T) {
	store := newMemStore()
	store.values[constants.SettingsKeyCurrent] = `{"theme":"light"}`
	store.values[constants.SettingsKeyLegacy] = `{"startMinutes":480,"endMinutes":1020}`

	result := LoadWithSource(store)
	if result.Source != SourceCurrent {
		t.Errorf("Source = %v, want %v", result.Source, SourceCurrent)
	}
	if result.Settings.Theme != models.ThemeLight {
		t.Errorf("Theme = %v, want %v", result.Settings.Theme, models.ThemeLight)
	}
}

func TestLoadMalformedCurrentFallsThroughToLegacy(t *testing.T) {
	store := newMemStore()
	store.values[constants.SettingsKeyCurrent] = "not json"
	store.values[constants.SettingsKeyLegacy] = `{"startMinutes":480,"endMinutes":1020}`

	result := LoadWithSource(store)
	if result.Source != SourceLegacy {
		t.Errorf("Source = %v, want %v", result.Source, SourceLegacy)
	}
}

func TestParseCurrentFieldDefaulting(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		check func(t *testing.T, s models.WidgetSettings)
	}{
		{
			name: "unknown theme falls back",
			data: `{"theme":"solarized"}`,
			check: func(t *testing.T, s models.WidgetSettings) {
				if s.Theme != models.DefaultTheme {
					t.Errorf("Theme = %v, want %v", s.Theme, models.DefaultTheme)
				}
			},
		},
		{
			name: "wrong-type theme falls back",
			data: `{"theme":7}`,
			check: func(t *testing.T, s models.WidgetSettings) {
				if s.Theme != models.DefaultTheme {
					t.Errorf("Theme = %v, want %v", s.Theme, models.DefaultTheme)
				}
			},
		},
		{
			name: "only exact 24h literal selects 24-hour",
			data: `{"timeFormat":"24H"}`,
			check: func(t *testing.T, s models.WidgetSettings) {
				if s.TimeFormat != models.TimeFormat12h {
					t.Errorf("TimeFormat = %v, want %v", s.TimeFormat, models.TimeFormat12h)
				}
			},
		},
		{
			name: "24h literal accepted",
			data: `{"timeFormat":"24h"}`,
			check: func(t *testing.T, s models.WidgetSettings) {
				if s.TimeFormat != models.TimeFormat24h {
					t.Errorf("TimeFormat = %v, want %v", s.TimeFormat, models.TimeFormat24h)
				}
			},
		},
		{
			name: "showPercent stays on unless explicitly false",
			data: `{"showPercent":"false"}`,
			check: func(t *testing.T, s models.WidgetSettings) {
				if !s.ShowPercent {
					t.Error("ShowPercent = false, want true for non-boolean value")
				}
			},
		},
		{
			name: "showPercent explicit false",
			data: `{"showPercent":false}`,
			check: func(t *testing.T, s models.WidgetSettings) {
				if s.ShowPercent {
					t.Error("ShowPercent = true, want false")
				}
			},
		},
		{
			name: "showSeconds stays off unless explicitly true",
			data: `{"showSeconds":"true"}`,
			check: func(t *testing.T, s models.WidgetSettings) {
				if s.ShowSeconds {
					t.Error("ShowSeconds = true, want false for non-boolean value")
				}
			},
		},
		{
			name: "out-of-range weekday window replaced wholesale",
			data: `{"weekday":{"startMinutes":-5,"endMinutes":600}}`,
			check: func(t *testing.T, s models.WidgetSettings) {
				if s.Weekday != models.DefaultWeekdayWindow {
					t.Errorf("Weekday = %+v, want default", s.Weekday)
				}
			},
		},
		{
			name: "equal-endpoint window replaced wholesale",
			data: `{"weekend":{"startMinutes":600,"endMinutes":600}}`,
			check: func(t *testing.T, s models.WidgetSettings) {
				if s.Weekend != models.DefaultWeekendWindow {
					t.Errorf("Weekend = %+v, want default", s.Weekend)
				}
			},
		},
		{
			name: "numeric strings coerce",
			data: `{"weekday":{"startMinutes":"480","endMinutes":"1020"}}`,
			check: func(t *testing.T, s models.WidgetSettings) {
				want := models.DayWindow{StartMinutes: 480, EndMinutes: 1020}
				if s.Weekday != want {
					t.Errorf("Weekday = %+v, want %+v", s.Weekday, want)
				}
			},
		},
		{
			name: "fractional minutes rejected",
			data: `{"weekday":{"startMinutes":480.5,"endMinutes":1020}}`,
			check: func(t *testing.T, s models.WidgetSettings) {
				if s.Weekday != models.DefaultWeekdayWindow {
					t.Errorf("Weekday = %+v, want default", s.Weekday)
				}
			},
		},
		{
			name: "override enabled requires exact boolean",
			data: `{"overrides":[{"enabled":"true","startMinutes":60,"endMinutes":120}]}`,
			check: func(t *testing.T, s models.WidgetSettings) {
				if s.Overrides[0].Enabled {
					t.Error("Overrides[0].Enabled = true, want false for string value")
				}
				want := models.DayWindow{StartMinutes: 60, EndMinutes: 120}
				if s.Overrides[0].DayWindow != want {
					t.Errorf("Overrides[0] window = %+v, want %+v", s.Overrides[0].DayWindow, want)
				}
			},
		},
		{
			name: "missing overrides synthesized from day defaults",
			data: `{}`,
			check: func(t *testing.T, s models.WidgetSettings) {
				for day, o := range s.Overrides {
					if o.Enabled {
						t.Errorf("Overrides[%d].Enabled = true, want false", day)
					}
					if o.DayWindow != models.DefaultWindowForDay(day) {
						t.Errorf("Overrides[%d] = %+v, want day default", day, o.DayWindow)
					}
				}
			},
		},
		{
			name: "short override array padded per-day",
			data: `{"overrides":[{"enabled":true,"startMinutes":60,"endMinutes":120}]}`,
			check: func(t *testing.T, s models.WidgetSettings) {
				if !s.Overrides[0].Enabled {
					t.Error("Overrides[0].Enabled = false, want true")
				}
				if s.Overrides[6].DayWindow != models.DefaultWeekendWindow {
					t.Errorf("Overrides[6] = %+v, want weekend default", s.Overrides[6].DayWindow)
				}
				if s.Overrides[3].DayWindow != models.DefaultWeekdayWindow {
					t.Errorf("Overrides[3] = %+v, want weekday default", s.Overrides[3].DayWindow)
				}
			},
		},
		{
			name: "mistyped overrides synthesized wholesale",
			data: `{"overrides":"nope"}`,
			check: func(t *testing.T, s models.WidgetSettings) {
				for day, o := range s.Overrides {
					if o.DayWindow != models.DefaultWindowForDay(day) || o.Enabled {
						t.Errorf("Overrides[%d] = %+v, want disabled day default", day, o)
					}
				}
			},
		},
		{
			name: "corrupt override entry gets its own day default",
			data: `{"overrides":[null,{"enabled":true,"startMinutes":9999,"endMinutes":0}]}`,
			check: func(t *testing.T, s models.WidgetSettings) {
				if s.Overrides[0].DayWindow != models.DefaultWeekendWindow {
					t.Errorf("Overrides[0] = %+v, want weekend default", s.Overrides[0].DayWindow)
				}
				// Entry 1 has a bad window but a valid enabled flag.
				if s.Overrides[1].DayWindow != models.DefaultWeekdayWindow {
					t.Errorf("Overrides[1] = %+v, want weekday default", s.Overrides[1].DayWindow)
				}
				if !s.Overrides[1].Enabled {
					t.Error("Overrides[1].Enabled = false, want true")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			store.values[constants.SettingsKeyCurrent] = tt.data

			result := LoadWithSource(store)
			if result.Source != SourceCurrent {
				t.Fatalf("Source = %v, want %v", result.Source, SourceCurrent)
			}
			tt.check(t, result.Settings)
		})
	}
}

func TestMidnightCrossingWindowAccepted(t *testing.T) {
	store := newMemStore()
	store.values[constants.SettingsKeyCurrent] = `{"weekday":{"startMinutes":1380,"endMinutes":60}}`

	s := Load(store)
	want := models.DayWindow{StartMinutes: 1380, EndMinutes: 60}
	if s.Weekday != want {
		t.Errorf("Weekday = %+v, want %+v", s.Weekday, want)
	}
	if !s.Weekday.CrossesMidnight() {
		t.Error("CrossesMidnight() = false, want true")
	}
}
