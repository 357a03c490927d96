package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBtopBox creates a btop-style box with the title embedded in the
// top border.
// Example: ╭─ Gradient Picker ──────────────╮
func RenderBtopBox(title string, content string, width, height int, borderColor lipgloss.Color) string {
	const (
		topLeft     = "╭"
		topRight    = "╮"
		bottomLeft  = "╰"
		bottomRight = "╯"
		horizontal  = "─"
		vertical    = "│"
	)
	innerWidth := width - 2
	if innerWidth < 1 {
		innerWidth = 1
	}

	border := lipgloss.NewStyle().Foreground(borderColor)

	var topBorder string
	if title != "" {
		label := " " + title + " "
		remaining := innerWidth - lipgloss.Width(label) - 1
		if remaining < 0 {
			// title does not fit, drop it
			topBorder = border.Render(topLeft + strings.Repeat(horizontal, innerWidth) + topRight)
		} else {
			topBorder = border.Render(topLeft+horizontal) +
				border.Bold(true).Render(label) +
				border.Render(strings.Repeat(horizontal, remaining)+topRight)
		}
	} else {
		topBorder = border.Render(topLeft + strings.Repeat(horizontal, innerWidth) + topRight)
	}

	bottomBorder := border.Render(bottomLeft + strings.Repeat(horizontal, innerWidth) + bottomRight)

	contentLines := strings.Split(content, "\n")
	innerHeight := height - 2
	if innerHeight < 0 {
		innerHeight = 0
	}

	lines := make([]string, 0, innerHeight+2)
	lines = append(lines, topBorder)
	for i := 0; i < innerHeight; i++ {
		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		lines = append(lines, border.Render(vertical)+FitWidth(line, innerWidth)+border.Render(vertical))
	}
	lines = append(lines, bottomBorder)

	return strings.Join(lines, "\n")
}

// FitWidth pads or truncates an already styled line to exactly width cells
func FitWidth(line string, width int) string {
	w := lipgloss.Width(line)
	if w < width {
		return line + strings.Repeat(" ", width-w)
	}
	if w > width {
		return lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line
}
