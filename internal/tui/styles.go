package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dayspan/dayspan/internal/models"
)

// Styles is the resolved lipgloss style set for one theme.
type Styles struct {
	Frame      lipgloss.Style
	Clock      lipgloss.Style
	WindowInfo lipgloss.Style
	BarFilled  lipgloss.Style
	BarEmpty   lipgloss.Style
	Percent    lipgloss.Style
	Title      lipgloss.Style
	Label      lipgloss.Style
	Value      lipgloss.Style
	Status     lipgloss.Style
	Error      lipgloss.Style
	Help       lipgloss.Style
}

func baseStyles(accent, dim, text, border string) Styles {
	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(border)).
			Padding(1, 3),
		Clock: lipgloss.NewStyle().
			Foreground(lipgloss.Color(text)).
			Bold(true),
		WindowInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(dim)),
		BarFilled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(accent)),
		BarEmpty: lipgloss.NewStyle().
			Foreground(lipgloss.Color(dim)),
		Percent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(accent)).
			Bold(true),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(accent)).
			Bold(true).
			MarginBottom(1),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(dim)).
			Width(22),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color(text)).
			Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(dim)),
	}
}

// StylesForTheme maps the stored theme label to its style set.
func StylesForTheme(theme models.Theme) Styles {
	switch theme {
	case models.ThemeLight:
		return baseStyles("63", "245", "235", "250")
	case models.ThemeNord:
		return baseStyles("110", "60", "253", "67")
	case models.ThemeMono:
		return baseStyles("252", "240", "255", "244")
	default: // dark
		return baseStyles("205", "240", "252", "62")
	}
}
