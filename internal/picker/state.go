package picker

import (
	"github.com/casapps/cascolor/internal/color"
)

// Panel is one of the independently navigable regions
type Panel int

const (
	PanelPalette Panel = iota
	PanelGradient
	PanelFormatList
)

// Next cycles Palette -> Gradient -> FormatList -> Palette
func (p Panel) Next() Panel {
	switch p {
	case PanelPalette:
		return PanelGradient
	case PanelGradient:
		return PanelFormatList
	default:
		return PanelPalette
	}
}

func (p Panel) String() string {
	switch p {
	case PanelPalette:
		return "Palette"
	case PanelGradient:
		return "Gradient"
	case PanelFormatList:
		return "FormatList"
	default:
		return "Unknown"
	}
}

// Mode routes keystrokes either to navigation or to the edit buffer
type Mode int

const (
	ModeNormal Mode = iota
	ModeEditing
)

const (
	PaletteCols = 10
	PaletteRows = 30

	// GradientStep is how far one keypress moves the gradient cursor
	GradientStep = 0.05

	// HelpText is the status shown before any key is pressed
	HelpText = "Tab: switch panel | h/j/k/l: navigate | c: copy | i: input | t: theme | q: quit"
	// EditHelpText is the status shown while typing a color
	EditHelpText = "Enter color (HEX, RGB, HSL) | Enter: apply | Esc: cancel"
)

// DefaultColor is the color a new session starts on
var DefaultColor = color.FromRGB(128, 128, 200)

// State is everything the picker knows between keystrokes. It is owned by
// a single event loop and only changed through Machine.Handle.
type State struct {
	Color  color.Color
	Panel  Panel
	Mode   Mode
	Buffer []rune
	Status string

	PaletteCol int
	PaletteRow int

	// GradientX is saturation, GradientY is inverted lightness, both in [0,1]
	GradientX float64
	GradientY float64
	// Hue is what the gradient paints with. It survives the cursor passing
	// through gray, black or white, where the color itself has no hue.
	Hue float64

	// FormatIndex indexes color.Formats
	FormatIndex int

	Quit bool
}

// NewState builds the startup state with the format list positioned on
// the user's preferred format.
func NewState(initial color.Color, format color.Format) *State {
	idx := 0
	for i, f := range color.Formats {
		if f == format {
			idx = i
		}
	}

	hue, _, _ := initial.HSL()

	return &State{
		Color:       initial,
		Panel:       PanelGradient,
		Mode:        ModeNormal,
		Status:      HelpText,
		PaletteCol:  PaletteCols / 2,
		PaletteRow:  PaletteRows / 2,
		GradientX:   0.5,
		GradientY:   0.5,
		Hue:         hue,
		FormatIndex: idx,
	}
}

// SelectedFormat is the format the copy key acts on
func (s *State) SelectedFormat() color.Format {
	return color.Formats[s.FormatIndex]
}

// Input returns the edit buffer as text
func (s *State) Input() string {
	return string(s.Buffer)
}

// PaletteHSL maps a palette cell to hue, saturation and lightness
func PaletteHSL(col, row int) (h, s, l float64) {
	h = float64(row) / PaletteRows * 360
	s = 0.8
	l = 0.2 + float64(col)/PaletteCols*0.6
	return h, s, l
}

// PaletteColor is the color shown in a palette cell
func PaletteColor(col, row int) color.Color {
	return color.FromHSL(PaletteHSL(col, row))
}

// GradientColor is the color at gradient coordinate (x, y) for a given hue
func GradientColor(hue, x, y float64) color.Color {
	return color.FromHSL(hue, x, 1-y)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
