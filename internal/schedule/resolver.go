// Package schedule maps an instant and a widget configuration to the
// currently active day window and the elapsed progress through it. All
// functions are pure and stateless; they are re-evaluated on every render
// tick without synchronization.
package schedule

import (
	"time"

	"github.com/dayspan/dayspan/internal/models"
)

// Active is a resolved schedule: the applicable window and its concrete
// bounds for a particular calendar day.
type Active struct {
	Window models.DayWindow
	Start  time.Time
	End    time.Time
}

// WindowForDay returns the window configured for the given weekday index
// (0=Sunday): the enabled override if one exists, else the weekend default
// for days 0 and 6, else the weekday default.
func WindowForDay(day int, s models.WidgetSettings) models.DayWindow {
	if day >= 0 && day < len(s.Overrides) && s.Overrides[day].Enabled {
		return s.Overrides[day].DayWindow
	}
	if models.IsWeekendDay(day) {
		return s.Weekend
	}
	return s.Weekday
}

// Bounds anchors a window to the local midnight of the given date and
// returns its concrete start and end instants. A window whose end does not
// exceed its start crosses midnight: the end lands on the following day.
// This is the only place abstract minute-of-day values become instants.
func Bounds(date time.Time, w models.DayWindow) (start, end time.Time) {
	year, month, day := date.Date()
	loc := date.Location()

	start = time.Date(year, month, day, 0, w.StartMinutes, 0, 0, loc)
	if w.CrossesMidnight() {
		end = time.Date(year, month, day+1, 0, w.EndMinutes, 0, 0, loc)
	} else {
		end = time.Date(year, month, day, 0, w.EndMinutes, 0, 0, loc)
	}
	return start, end
}

// ResolveActive finds the window instance governing now. Today's window is
// checked first; a midnight-crossing window that started yesterday is still
// anchored to yesterday's weekday configuration, so yesterday is checked
// second. When neither contains now, today's window is returned anyway and
// the caller sees a progress of 0 or 100.
func ResolveActive(now time.Time, s models.WidgetSettings) Active {
	today := resolveForDate(now, s)
	if contains(today, now) {
		return today
	}

	yesterday := resolveForDate(now.AddDate(0, 0, -1), s)
	if contains(yesterday, now) {
		return yesterday
	}

	return today
}

// Progress returns the elapsed percentage through the active window,
// clamped to [0, 100]. A non-positive duration reports 0; that cannot
// happen for a valid window but guards against clock anomalies such as DST
// shifts collapsing the interval.
func Progress(now time.Time, s models.WidgetSettings) float64 {
	active := ResolveActive(now, s)
	return progressBetween(now, active.Start, active.End)
}

func progressBetween(now, start, end time.Time) float64 {
	duration := end.Sub(start)
	if duration <= 0 {
		return 0
	}

	percent := float64(now.Sub(start)) / float64(duration) * 100
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

func resolveForDate(date time.Time, s models.WidgetSettings) Active {
	window := WindowForDay(int(date.Weekday()), s)
	start, end := Bounds(date, window)
	return Active{Window: window, Start: start, End: end}
}

// contains checks membership in [Start, End], inclusive at both ends.
func contains(a Active, now time.Time) bool {
	return !now.Before(a.Start) && !now.After(a.End)
}
