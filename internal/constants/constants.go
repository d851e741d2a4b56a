package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName           = "dayspan"
	DefaultConfigPath = "~/.config/dayspan/dayspan.db"
	Version           = "v0.2.0"

	// Storage keys for the persisted settings document. The legacy key held
	// the old single-window schema and is read-only: the store always writes
	// the current key.
	SettingsKeyCurrent = "settings.v2"
	SettingsKeyLegacy  = "settings"

	// TimeFormat is the standard clock time format used throughout the
	// application (HH:MM)
	TimeFormat = "15:04"

	// Lockfile for single-instance enforcement of the widget
	LockfileName = "dayspan.lock"

	// Event names carried over the window event bus
	EventRefreshSettings = "refresh-settings"
	EventRestartWidget   = "restart-widget"

	// StatusMessageDuration is how long a transient status line stays visible,
	// in seconds
	StatusMessageDuration = 4

	// Session States
	StateWidget SessionState = iota
	StateSettings
	StateEditSettings
)
