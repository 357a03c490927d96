package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/casapps/cascolor/internal/picker"
	"github.com/casapps/cascolor/internal/utils"
)

// Run starts the bubbletea program in the alternate screen and blocks until
// the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		utils.Debug("bubbletea program exited: %v", err)
		return &picker.TerminalError{Op: "run", Err: err}
	}
	return nil
}
