package components

import "github.com/charmbracelet/lipgloss"

// Tab represents a single tab item
type Tab struct {
	Label string
}

// RenderTabBar renders a horizontal tab bar with the given tabs.
// activeIndex specifies which tab is currently active (0-indexed).
func RenderTabBar(tabs []Tab, activeIndex int, activeStyle, inactiveStyle lipgloss.Style) string {
	rendered := make([]string, 0, len(tabs))
	for i, t := range tabs {
		style := inactiveStyle
		if i == activeIndex {
			style = activeStyle
		}
		rendered = append(rendered, style.Render(t.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
