package system

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dayspan/dayspan/internal/cli"
	"github.com/dayspan/dayspan/internal/lock"
	"github.com/dayspan/dayspan/internal/logger"
	"github.com/dayspan/dayspan/internal/tui"
)

type WidgetCmd struct{}

func (c *WidgetCmd) Run(ctx *cli.Context) error {
	configDir := filepath.Dir(ctx.Store.GetConfigPath())

	instance, err := lock.Acquire(configDir)
	if err != nil {
		if err == lock.ErrAlreadyRunning && ctx.Host != nil {
			// Hand focus to the running instance instead of starting a
			// second one.
			if focusErr := ctx.Host.FocusSettingsWindow(); focusErr != nil {
				logger.Warn("Failed to focus running widget", "error", focusErr)
			}
		}
		return err
	}
	defer func() {
		if err := instance.Release(); err != nil {
			logger.Warn("Failed to release instance lock", "error", err)
		}
	}()

	model := tui.NewModel(ctx.Store, ctx.Bus, ctx.Host, ctx.Autostart)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("widget exited with an error: %w", err)
	}
	return nil
}
