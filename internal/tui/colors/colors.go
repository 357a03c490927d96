package colors

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/casapps/cascolor/internal/color"
	"github.com/casapps/cascolor/internal/config"
)

// Palette is the set of chrome colors for one theme
type Palette struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color
	Accent     lipgloss.Color
	Dim        lipgloss.Color
	Error      lipgloss.Color
}

// === Theme Palettes ===
var (
	Dark = Palette{
		Background: lipgloss.Color("#1e1e28"),
		Foreground: lipgloss.Color("#dcdce6"),
		Border:     lipgloss.Color("#505064"),
		Accent:     lipgloss.Color("#6496ff"),
		Dim:        lipgloss.Color("#a9b1d6"),
		Error:      lipgloss.Color("#ff5555"),
	}

	Light = Palette{
		Background: lipgloss.Color("#fafaff"),
		Foreground: lipgloss.Color("#1e1e28"),
		Border:     lipgloss.Color("#b4b4c8"),
		Accent:     lipgloss.Color("#3c64c8"),
		Dim:        lipgloss.Color("#5a5a6e"),
		Error:      lipgloss.Color("#c0392b"),
	}
)

// CursorMark is drawn over the selected gradient cell
var CursorMark = lipgloss.Color("#ffffff")

// For returns the palette of an already resolved theme
func For(theme config.Theme) Palette {
	if theme == config.ThemeLight {
		return Light
	}
	return Dark
}

// Of converts a picker color into a lipgloss color
func Of(c color.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}
