package models

// MinutesPerDay is the number of minutes in a calendar day.
const MinutesPerDay = 1440

// DayWindow is a time-of-day interval expressed in minutes since local
// midnight. When EndMinutes <= StartMinutes the window crosses midnight and
// ends on the following day.
type DayWindow struct {
	StartMinutes int `json:"startMinutes"`
	EndMinutes   int `json:"endMinutes"`
}

// Valid reports whether both endpoints are in [0, 1440) and distinct. A
// zero-length window is ambiguous (empty or full day) and is rejected.
func (w DayWindow) Valid() bool {
	if w.StartMinutes < 0 || w.StartMinutes >= MinutesPerDay {
		return false
	}
	if w.EndMinutes < 0 || w.EndMinutes >= MinutesPerDay {
		return false
	}
	return w.StartMinutes != w.EndMinutes
}

// CrossesMidnight reports whether the window ends on the following day.
func (w DayWindow) CrossesMidnight() bool {
	return w.EndMinutes <= w.StartMinutes
}

// DayOverride is a per-weekday replacement for the default weekday/weekend
// window. It only takes effect when Enabled is true.
type DayOverride struct {
	DayWindow
	Enabled bool `json:"enabled"`
}
