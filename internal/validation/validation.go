// Package validation checks user-supplied schedule input at the edit
// boundary. Persisted data is never validated here: the settings store
// silently corrects it instead. Rejections carry field-specific messages and
// leave the in-memory settings untouched.
package validation

import (
	"fmt"

	"github.com/dayspan/dayspan/internal/models"
	"github.com/dayspan/dayspan/internal/utils"
)

// ValidateStartTime checks a window start field (HH:MM).
func ValidateStartTime(s string) error {
	if !utils.ValidateTimeFormat(s) {
		return fmt.Errorf("invalid start time %q, use HH:MM", s)
	}
	return nil
}

// ValidateEndTime checks a window end field (HH:MM) against its start. Equal
// endpoints are rejected: a zero-length window is ambiguous between empty
// and full-day. End before start is allowed and means the window crosses
// midnight.
func ValidateEndTime(start, end string) error {
	if !utils.ValidateTimeFormat(end) {
		return fmt.Errorf("invalid end time %q, use HH:MM", end)
	}
	if utils.ValidateTimeFormat(start) && start == end {
		return fmt.Errorf("end time must differ from start time")
	}
	return nil
}

// ParseWindow converts a pair of HH:MM fields into a DayWindow, applying
// both field checks.
func ParseWindow(start, end string) (models.DayWindow, error) {
	if err := ValidateStartTime(start); err != nil {
		return models.DayWindow{}, err
	}
	if err := ValidateEndTime(start, end); err != nil {
		return models.DayWindow{}, err
	}

	startMin, err := utils.ParseTimeToMinutes(start)
	if err != nil {
		return models.DayWindow{}, fmt.Errorf("invalid start time %q, use HH:MM", start)
	}
	endMin, err := utils.ParseTimeToMinutes(end)
	if err != nil {
		return models.DayWindow{}, fmt.Errorf("invalid end time %q, use HH:MM", end)
	}

	return models.DayWindow{StartMinutes: startMin, EndMinutes: endMin}, nil
}

// ValidateDayIndex checks a weekday index against the fixed 0=Sunday
// through 6=Saturday convention.
func ValidateDayIndex(day int) error {
	if day < 0 || day > 6 {
		return fmt.Errorf("day must be between 0 (Sunday) and 6 (Saturday)")
	}
	return nil
}
