package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dayspan/dayspan/internal/constants"
	"github.com/dayspan/dayspan/internal/schedule"
	"github.com/dayspan/dayspan/internal/utils"
)

const barWidth = 30

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateEditSettings:
		content = m.form.View()
	case constants.StateSettings:
		content = m.viewSettings()
	default:
		content = m.viewWidget()
	}

	var status string
	if m.status != "" {
		status = m.styles.Status.Render(m.status)
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		status,
		m.styles.Help.Render(m.help.View(m.keys)),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, ui)
	}
	return ui
}

func (m Model) viewWidget() string {
	active := schedule.ResolveActive(m.now, m.settings)
	percent := schedule.Progress(m.now, m.settings)

	lines := []string{
		m.styles.Clock.Render(utils.FormatClock(m.now, m.settings.TimeFormat, m.settings.ShowSeconds)),
		m.styles.WindowInfo.Render(utils.FormatWindow(active.Window)),
		m.renderBar(percent),
	}
	if m.settings.ShowPercent {
		lines = append(lines, m.styles.Percent.Render(fmt.Sprintf("%.0f%%", percent)))
	}

	return m.styles.Frame.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (m Model) renderBar(percent float64) string {
	filled := int(percent/100*barWidth + 0.5)
	if filled > barWidth {
		filled = barWidth
	}
	return m.styles.BarFilled.Render(strings.Repeat("█", filled)) +
		m.styles.BarEmpty.Render(strings.Repeat("░", barWidth-filled))
}

func (m Model) viewSettings() string {
	s := m.settings

	row := func(label, value string) string {
		return fmt.Sprintf("%s %s", m.styles.Label.Render(label), m.styles.Value.Render(value))
	}

	general := lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.Title.Render("Widget Settings"),
		row("Theme:", string(s.Theme)),
		row("Time Format:", string(s.TimeFormat)),
		row("Show Seconds:", fmt.Sprintf("%t", s.ShowSeconds)),
		row("Show Percent:", fmt.Sprintf("%t", s.ShowPercent)),
		row("Run on Startup:", fmt.Sprintf("%t", s.RunOnStartup)),
	)

	windows := lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.Title.Render("Schedule"),
		row("Weekday:", utils.FormatWindow(s.Weekday)),
		row("Weekend:", utils.FormatWindow(s.Weekend)),
	)

	var overrideRows []string
	overrideRows = append(overrideRows, m.styles.Title.Render("Day Overrides"))
	for day, o := range s.Overrides {
		value := "off"
		if o.Enabled {
			value = utils.FormatWindow(o.DayWindow)
		}
		overrideRows = append(overrideRows, row(utils.WeekdayName(day)+":", value))
	}
	overrides := lipgloss.JoinVertical(lipgloss.Left, overrideRows...)

	hint := m.styles.Help.Render("Press 'e' to edit settings")

	return lipgloss.JoinVertical(lipgloss.Left, general, "", windows, "", overrides, "", hint)
}
