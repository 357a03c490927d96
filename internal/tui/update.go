package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		return m, tick()

	case tea.KeyMsg:
		for _, k := range translateKey(msg) {
			m.machine.Handle(m.state, k)
			if m.state.Quit {
				return m, tea.Quit
			}
		}
		return m, nil
	}

	return m, nil
}
