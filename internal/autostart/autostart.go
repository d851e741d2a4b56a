// Package autostart toggles launching the widget at login. Failures here
// are reported to the user but never block a settings save: the stored
// runOnStartup flag is the source of truth and the host toggle is applied
// best-effort.
package autostart

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dayspan/dayspan/internal/constants"
)

// Manager is the host run-at-startup toggle.
type Manager interface {
	IsEnabled() (bool, error)
	Enable() error
	Disable() error
}

// XDGManager manages a freedesktop autostart entry under
// ~/.config/autostart. It is the default Manager on Linux desktops.
type XDGManager struct {
	configDir string // overridable for tests
	execPath  string
}

func NewXDGManager() *XDGManager {
	return &XDGManager{}
}

func (m *XDGManager) entryPath() (string, error) {
	dir := m.configDir
	if dir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user config dir: %w", err)
		}
		dir = filepath.Join(configDir, "autostart")
	}
	return filepath.Join(dir, constants.AppName+".desktop"), nil
}

func (m *XDGManager) executable() (string, error) {
	if m.execPath != "" {
		return m.execPath, nil
	}
	return os.Executable()
}

func (m *XDGManager) IsEnabled() (bool, error) {
	path, err := m.entryPath()
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (m *XDGManager) Enable() error {
	path, err := m.entryPath()
	if err != nil {
		return err
	}
	exe, err := m.executable()
	if err != nil {
		return fmt.Errorf("failed to resolve executable path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create autostart directory: %w", err)
	}

	entry := fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=%s
Exec=%s widget
X-GNOME-Autostart-enabled=true
`, constants.AppName, exe)

	if err := os.WriteFile(path, []byte(entry), 0644); err != nil {
		return fmt.Errorf("failed to write autostart entry: %w", err)
	}
	return nil
}

func (m *XDGManager) Disable() error {
	path, err := m.entryPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove autostart entry: %w", err)
	}
	return nil
}

// Apply reconciles the host toggle with the desired flag and returns a
// user-facing error when the host call fails.
func Apply(m Manager, runOnStartup bool) error {
	enabled, err := m.IsEnabled()
	if err != nil {
		return fmt.Errorf("failed to query autostart state: %w", err)
	}
	if runOnStartup == enabled {
		return nil
	}
	if runOnStartup {
		return m.Enable()
	}
	return m.Disable()
}
