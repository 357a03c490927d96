package tui

import (
	"github.com/casapps/cascolor/internal/picker"
)

const (
	// Timeouts and Intervals
	TickInterval = picker.PollInterval

	// Layout Ratios
	PaletteWidthRatio = 0.3 // Palette column takes 30% width

	// Layout Heights
	TabBarHeight  = 1
	StatusHeight  = 3
	HelpHeight    = 1
	FormatsHeight = 15 // preview, 5 formats, name, 4 perceptual lines, spacers and borders

	// Minimum terminal size before the layout gives up
	MinWidth  = 60
	MinHeight = 24

	// Input overlay
	PopupWidth  = 60
	PopupHeight = 7
)
