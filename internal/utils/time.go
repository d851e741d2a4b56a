package utils

import (
	"fmt"
	"time"

	"github.com/dayspan/dayspan/internal/constants"
	"github.com/dayspan/dayspan/internal/models"
)

// ParseTime parses a clock time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ParseTimeToMinutes parses a clock time string (HH:MM) and returns the
// number of minutes from midnight.
func ParseTimeToMinutes(timeStr string) (int, error) {
	t, err := ParseTime(timeStr)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatMinutes renders a minutes-from-midnight value as HH:MM.
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatWindow renders a day window as "HH:MM - HH:MM", marking windows that
// run past midnight with a next-day indicator.
func FormatWindow(w models.DayWindow) string {
	if w.CrossesMidnight() {
		return fmt.Sprintf("%s - %s (+1d)", FormatMinutes(w.StartMinutes), FormatMinutes(w.EndMinutes))
	}
	return fmt.Sprintf("%s - %s", FormatMinutes(w.StartMinutes), FormatMinutes(w.EndMinutes))
}

// FormatClock renders the given instant according to the configured time
// format mode and seconds preference.
func FormatClock(t time.Time, mode models.TimeFormatMode, showSeconds bool) string {
	var layout string
	switch {
	case mode == models.TimeFormat24h && showSeconds:
		layout = "15:04:05"
	case mode == models.TimeFormat24h:
		layout = "15:04"
	case showSeconds:
		layout = "3:04:05 PM"
	default:
		layout = "3:04 PM"
	}
	return t.Format(layout)
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTime(timeStr)
	return err == nil
}

// WeekdayName returns the display name for a weekday index (0=Sunday).
func WeekdayName(day int) string {
	if day < 0 || day > 6 {
		return "Unknown"
	}
	return time.Weekday(day).String()
}
