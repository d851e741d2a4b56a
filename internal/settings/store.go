// Package settings owns the versioned persistence format for widget
// configuration: serializing, validating, and migrating WidgetSettings
// to and from the flat key-value store.
package settings

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dayspan/dayspan/internal/constants"
	"github.com/dayspan/dayspan/internal/logger"
	"github.com/dayspan/dayspan/internal/models"
	"github.com/dayspan/dayspan/internal/storage"
)

// Source identifies which persisted schema produced a loaded value.
type Source string

const (
	SourceCurrent  Source = "current"
	SourceLegacy   Source = "legacy"
	SourceDefaults Source = "defaults"
)

// LoadResult is a fully valid settings value plus the schema it came from.
type LoadResult struct {
	Settings models.WidgetSettings
	Source   Source
}

// Load reads settings from the store, trying the current schema, then the
// legacy schema, then the hardcoded defaults. It never fails and never
// returns a partially-invalid value: malformed fields are silently replaced
// by their defaults so that corrupt settings can never prevent the widget
// from starting.
func Load(store storage.Provider) models.WidgetSettings {
	return LoadWithSource(store).Settings
}

// LoadWithSource is Load plus the schema source, for diagnostics.
func LoadWithSource(store storage.Provider) LoadResult {
	if data, ok, err := store.Get(constants.SettingsKeyCurrent); err == nil && ok {
		if parsed, ok := parseCurrent(data); ok {
			return LoadResult{Settings: parsed, Source: SourceCurrent}
		}
		logger.Warn("Persisted settings are malformed, trying legacy schema")
	}

	if data, ok, err := store.Get(constants.SettingsKeyLegacy); err == nil && ok {
		if parsed, ok := parseLegacy(data); ok {
			logger.Info("Migrated settings from legacy schema")
			return LoadResult{Settings: parsed, Source: SourceLegacy}
		}
	}

	return LoadResult{Settings: models.DefaultSettings(), Source: SourceDefaults}
}

// Save serializes the settings under the current schema key. The caller is
// responsible for validating user input before constructing the value; a
// write failure is not recoverable and propagates.
func Save(store storage.Provider, s models.WidgetSettings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	if err := store.Set(constants.SettingsKeyCurrent, string(data)); err != nil {
		return fmt.Errorf("failed to persist settings: %w", err)
	}
	return nil
}

// parseCurrent parses a current-schema document. The whole document is
// rejected only when it is not a JSON object; individual fields that are
// missing, mistyped, or out of range are replaced by their defaults.
func parseCurrent(data string) (models.WidgetSettings, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(data), &fields); err != nil || fields == nil {
		return models.WidgetSettings{}, false
	}

	s := models.WidgetSettings{
		Theme:        parseTheme(fields["theme"]),
		TimeFormat:   parseTimeFormat(fields["timeFormat"]),
		ShowSeconds:  boolField(fields["showSeconds"], false),
		ShowPercent:  boolField(fields["showPercent"], true),
		RunOnStartup: boolField(fields["runOnStartup"], false),
		Weekday:      parseWindow(fields["weekday"], models.DefaultWeekdayWindow),
		Weekend:      parseWindow(fields["weekend"], models.DefaultWeekendWindow),
	}

	var overrides []json.RawMessage
	if raw, ok := fields["overrides"]; ok {
		// Ignore the error: a mistyped array just means every entry is
		// synthesized from its default.
		_ = json.Unmarshal(raw, &overrides)
	}
	for day := range s.Overrides {
		var raw json.RawMessage
		if day < len(overrides) {
			raw = overrides[day]
		}
		s.Overrides[day] = parseOverride(raw, day)
	}

	return s, true
}

// parseLegacy parses the pre-versioning schema: a single global window with
// no weekday/weekend distinction. A valid legacy window becomes the weekday
// and weekend default and seeds all seven overrides, disabled; every other
// field takes its hardcoded default.
func parseLegacy(data string) (models.WidgetSettings, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(data), &fields); err != nil || fields == nil {
		return models.WidgetSettings{}, false
	}

	start, okStart := coerceMinutes(fields["startMinutes"])
	end, okEnd := coerceMinutes(fields["endMinutes"])
	if !okStart || !okEnd {
		return models.WidgetSettings{}, false
	}

	window := models.DayWindow{StartMinutes: start, EndMinutes: end}
	if !window.Valid() {
		return models.WidgetSettings{}, false
	}

	s := models.DefaultSettings()
	s.Weekday = window
	s.Weekend = window
	for day := range s.Overrides {
		s.Overrides[day] = models.DayOverride{DayWindow: window}
	}
	return s, true
}

func parseTheme(raw json.RawMessage) models.Theme {
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return models.DefaultTheme
	}
	return models.ParseTheme(v)
}

func parseTimeFormat(raw json.RawMessage) models.TimeFormatMode {
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return models.TimeFormat12h
	}
	return models.ParseTimeFormat(v)
}

// boolField applies the sentinel rule: only an explicit boolean opposite of
// the default flips the value. The asymmetric defaulting (showPercent stays
// on unless explicitly disabled, the rest stay off unless explicitly
// enabled) is part of the persisted contract.
func boolField(raw json.RawMessage, def bool) bool {
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}

// parseWindow coerces a window object. Both endpoints must coerce to
// integers in range and be unequal; otherwise the fallback window replaces
// the value wholesale, never a half-patched one.
func parseWindow(raw json.RawMessage, fallback models.DayWindow) models.DayWindow {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return fallback
	}

	start, okStart := coerceMinutes(fields["startMinutes"])
	end, okEnd := coerceMinutes(fields["endMinutes"])
	if !okStart || !okEnd {
		return fallback
	}

	window := models.DayWindow{StartMinutes: start, EndMinutes: end}
	if !window.Valid() {
		return fallback
	}
	return window
}

func parseOverride(raw json.RawMessage, day int) models.DayOverride {
	fallback := models.DefaultWindowForDay(day)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return models.DayOverride{DayWindow: fallback}
	}

	return models.DayOverride{
		DayWindow: parseWindow(raw, fallback),
		Enabled:   boolField(fields["enabled"], false),
	}
}

// coerceMinutes accepts a JSON number or a numeric string, requiring an
// integral value in [0, 1440).
func coerceMinutes(raw json.RawMessage) (int, bool) {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	}

	n := int(f)
	if float64(n) != f {
		return 0, false
	}
	if n < 0 || n >= models.MinutesPerDay {
		return 0, false
	}
	return n, true
}
