package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/casapps/cascolor/internal/config"
	"github.com/casapps/cascolor/internal/picker"
)

// tickMsg drives redraws even when no key arrives
type tickMsg time.Time

// Model adapts the picker state machine to bubbletea
type Model struct {
	machine *picker.Machine
	state   *picker.State
	prefs   picker.Preferences

	// darkBackground is queried once before the program starts
	darkBackground bool

	width  int
	height int

	help    help.Model
	version string
}

// Options configures a new Model
type Options struct {
	Machine        *picker.Machine
	State          *picker.State
	DarkBackground bool
	Version        string
}

// NewModel builds the root model. Preferences are taken from the machine.
func NewModel(opts Options) Model {
	h := help.New()
	h.ShortSeparator = " | "

	return Model{
		machine:        opts.Machine,
		state:          opts.State,
		prefs:          opts.Machine.Preferences,
		darkBackground: opts.DarkBackground,
		help:           h,
		version:        opts.Version,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// theme returns the concrete dark or light theme to paint with
func (m Model) theme() config.Theme {
	if m.prefs == nil {
		return config.ThemeDark
	}
	return m.prefs.Theme().ResolveWith(m.darkBackground)
}

// State exposes the picker state, mostly for tests
func (m Model) State() *picker.State {
	return m.state
}
