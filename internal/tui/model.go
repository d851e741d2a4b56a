package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/dayspan/dayspan/internal/autostart"
	"github.com/dayspan/dayspan/internal/constants"
	"github.com/dayspan/dayspan/internal/models"
	"github.com/dayspan/dayspan/internal/settings"
	"github.com/dayspan/dayspan/internal/shell"
	"github.com/dayspan/dayspan/internal/storage"
)

// TickMsg is the per-second render tick.
type TickMsg time.Time

// refreshMsg arrives when the settings window signals a settings change.
type refreshMsg struct{}

type Model struct {
	store     storage.Provider
	bus       *shell.Bus
	host      shell.WindowHost
	autostart autostart.Manager

	// settings is an immutable snapshot, replaced wholesale on refresh.
	settings models.WidgetSettings
	styles   Styles

	state        constants.SessionState
	keys         KeyMap
	help         help.Model
	now          time.Time
	width        int
	height       int
	form         *huh.Form
	settingsForm *SettingsFormModel

	status      string
	statusUntil time.Time

	refresh     chan struct{}
	unsubscribe func()
	quitting    bool
}

// NewModel builds the widget model. host may be nil when no windowing shell
// is attached (plain terminal run); host calls then report a status instead.
func NewModel(store storage.Provider, bus *shell.Bus, host shell.WindowHost, mgr autostart.Manager) Model {
	m := Model{
		store:     store,
		bus:       bus,
		host:      host,
		autostart: mgr,
		settings:  settings.Load(store),
		state:     constants.StateWidget,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		now:       time.Now(),
		refresh:   make(chan struct{}, 1),
	}
	m.styles = StylesForTheme(m.settings.Theme)

	// Fire-and-forget delivery: a full refresh channel means a reload is
	// already pending, so the signal can be dropped.
	m.unsubscribe = bus.Subscribe(constants.EventRefreshSettings, shell.TargetWidget, func(string) {
		select {
		case m.refresh <- struct{}{}:
		default:
		}
	})

	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickAligned(m.now), waitForRefresh(m.refresh))
}

// tickAligned schedules the next tick on the upcoming wall-clock second
// boundary so the displayed seconds stay in step with the system clock.
func tickAligned(now time.Time) tea.Cmd {
	next := now.Truncate(time.Second).Add(time.Second)
	return tea.Tick(time.Until(next), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func waitForRefresh(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return refreshMsg{}
	}
}

// setStatus shows a transient status line; it clears itself after a few
// ticks.
func (m *Model) setStatus(text string) {
	m.status = text
	m.statusUntil = time.Now().Add(constants.StatusMessageDuration * time.Second)
}
