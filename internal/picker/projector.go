package picker

import (
	"github.com/casapps/cascolor/internal/color"
)

// Surface is the size in cells available to the gradient field
type Surface struct {
	Width  int
	Height int
}

// Cell is one painted color with its cursor flag
type Cell struct {
	Color    color.Color
	Selected bool
}

// FormatRow is one line of the format list
type FormatRow struct {
	Key      rune
	Label    string
	Value    string
	Selected bool
}

// Frame is everything a backend needs to paint one screen. It contains
// no terminal types, so any renderer can consume it.
type Frame struct {
	Color color.Color
	Panel Panel

	// Palette is indexed [row][col]
	Palette [][]Cell
	// PaletteRow is the palette cursor row, kept even when another panel
	// is active so backends can scroll to it
	PaletteRow int
	// Gradient is indexed [y][x] and sized to the Surface
	Gradient [][]Cell

	Formats []FormatRow

	// Name is the CSS name of the color when it has one
	Name string
	// Perceptual holds the Lab/LCH/OKLab/OKLCH readouts
	Perceptual color.AllFormats

	Status  string
	Editing bool
	Input   string
}

// Project derives the frame for s. It never mutates s, so calling it
// repeatedly on unchanged state yields identical frames.
func Project(s *State, surface Surface) Frame {
	f := Frame{
		Color:      s.Color,
		Panel:      s.Panel,
		Palette:    projectPalette(s),
		PaletteRow: s.PaletteRow,
		Gradient:   projectGradient(s, surface),
		Formats:    projectFormats(s),
		Perceptual: s.Color.All(),
		Status:     s.Status,
		Editing:    s.Mode == ModeEditing,
	}

	if name, ok := color.NameOf(s.Color.Hex()); ok {
		f.Name = name
	}
	if f.Editing {
		f.Input = s.Input()
	}
	return f
}

func projectPalette(s *State) [][]Cell {
	active := s.Panel == PanelPalette

	grid := make([][]Cell, PaletteRows)
	for row := range grid {
		grid[row] = make([]Cell, PaletteCols)
		for col := range grid[row] {
			grid[row][col] = Cell{
				Color:    PaletteColor(col, row),
				Selected: active && col == s.PaletteCol && row == s.PaletteRow,
			}
		}
	}
	return grid
}

// PaletteWindow picks which palette rows [start, end) fit in visible rows,
// keeping cursor roughly centered
func PaletteWindow(cursor, visible int) (start, end int) {
	if visible >= PaletteRows {
		return 0, PaletteRows
	}
	if visible <= 0 {
		return 0, 0
	}
	start = cursor - visible/2
	if start < 0 {
		start = 0
	}
	if start+visible > PaletteRows {
		start = PaletteRows - visible
	}
	return start, start + visible
}

// GradientCursor maps the gradient coordinate onto a w x h field
func GradientCursor(s *State, w, h int) (x, y int) {
	x = clampCell(int(s.GradientX*float64(w)), w)
	y = clampCell(int(s.GradientY*float64(h)), h)
	return x, y
}

func clampCell(v, size int) int {
	if v >= size {
		v = size - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

func projectGradient(s *State, surface Surface) [][]Cell {
	w, h := surface.Width, surface.Height
	if w <= 0 || h <= 0 {
		return nil
	}

	cx, cy := GradientCursor(s, w, h)
	active := s.Panel == PanelGradient

	field := make([][]Cell, h)
	for y := range field {
		field[y] = make([]Cell, w)
		for x := range field[y] {
			field[y][x] = Cell{
				Color:    GradientColor(s.Hue, float64(x)/float64(w), float64(y)/float64(h)),
				Selected: active && x == cx && y == cy,
			}
		}
	}
	return field
}

func projectFormats(s *State) []FormatRow {
	active := s.Panel == PanelFormatList

	rows := make([]FormatRow, len(color.Formats))
	for i, f := range color.Formats {
		rows[i] = FormatRow{
			Key:      rune('1' + i),
			Label:    f.String(),
			Value:    s.Color.Format(f),
			Selected: active && i == s.FormatIndex,
		}
	}
	return rows
}
