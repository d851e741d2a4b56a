package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/dayspan/dayspan/internal/autostart"
	"github.com/dayspan/dayspan/internal/constants"
	"github.com/dayspan/dayspan/internal/errors"
	"github.com/dayspan/dayspan/internal/logger"
	"github.com/dayspan/dayspan/internal/settings"
	"github.com/dayspan/dayspan/internal/shell"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.now = time.Time(msg)
		if m.status != "" && m.now.After(m.statusUntil) {
			m.status = ""
		}
		return m, tickAligned(m.now)

	case refreshMsg:
		// Replace the snapshot wholesale; the resolver never sees a
		// half-updated configuration.
		m.settings = settings.Load(m.store)
		m.styles = StylesForTheme(m.settings.Theme)
		return m, waitForRefresh(m.refresh)
	}

	switch m.state {
	case constants.StateEditSettings:
		return m.updateEditSettings(msg)
	case constants.StateSettings:
		return m.updateSettings(msg)
	default:
		return m.updateWidget(msg)
	}
}

func (m Model) updateWidget(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.unsubscribe()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Settings):
			m.state = constants.StateSettings
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

func (m Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.unsubscribe()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.state = constants.StateWidget
		case key.Matches(msg, m.keys.Edit):
			m.settingsForm = NewSettingsFormModel(m.settings)
			m.form = NewSettingsForm(m.settingsForm)
			m.state = constants.StateEditSettings
			return m, m.form.Init()
		}
	}
	return m, nil
}

func (m Model) updateEditSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateSettings
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		newSettings, err := m.settingsForm.ToSettings()
		if err != nil {
			// Field validators should have caught this; reopen the form.
			m.setStatus(errors.Format(err))
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}

		if err := settings.Save(m.store, newSettings); err != nil {
			// A failed write is not recoverable mid-session; surface it and
			// keep the prior settings.
			m.setStatus(errors.Format(err))
			m.state = constants.StateSettings
			return m, tea.Batch(cmds...)
		}

		// The autostart toggle is best-effort: its failure never unwinds a
		// persisted save.
		if err := autostart.Apply(m.autostart, newSettings.RunOnStartup); err != nil {
			logger.Warn("Autostart toggle failed", "error", err)
			m.setStatus(errors.Format(err))
		}

		m.bus.Emit(constants.EventRefreshSettings, shell.TargetWidget)
		m.state = constants.StateSettings
	case huh.StateAborted:
		m.state = constants.StateSettings
	}
	return m, tea.Batch(cmds...)
}
