package gui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var noticeStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1).
	Width(49)

// Notice is printed when a display is detected. The graphical picker is
// not built yet.
func Notice() string {
	return noticeStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		"GUI mode is under active development",
		"TUI mode is fully functional - please use:",
		"unset DISPLAY && cascolor",
	))
}

// Run writes the notice to w
func Run(w io.Writer) error {
	_, err := fmt.Fprintln(w, Notice())
	return err
}
