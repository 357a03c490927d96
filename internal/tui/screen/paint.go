package screen

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/casapps/cascolor/internal/color"
	"github.com/casapps/cascolor/internal/config"
	"github.com/casapps/cascolor/internal/picker"
)

const (
	formatsHeight = 11
	statusHeight  = 1
	headerHeight  = 1
)

type palette struct {
	bg, fg, border, accent, dim tcell.Color
}

var (
	darkPalette = palette{
		bg:     tcell.NewRGBColor(30, 30, 40),
		fg:     tcell.NewRGBColor(220, 220, 230),
		border: tcell.NewRGBColor(80, 80, 100),
		accent: tcell.NewRGBColor(100, 150, 255),
		dim:    tcell.NewRGBColor(169, 177, 214),
	}
	lightPalette = palette{
		bg:     tcell.NewRGBColor(250, 250, 255),
		fg:     tcell.NewRGBColor(30, 30, 40),
		border: tcell.NewRGBColor(180, 180, 200),
		accent: tcell.NewRGBColor(60, 100, 200),
		dim:    tcell.NewRGBColor(90, 90, 110),
	}
)

func paletteFor(t config.Theme) palette {
	if t == config.ThemeLight {
		return lightPalette
	}
	return darkPalette
}

func rgb(c color.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// rect is a box on screen, borders included
type rect struct {
	x, y, w, h int
}

type layout struct {
	palette, gradient, formats rect
	statusY                    int
}

func computeLayout(w, h int) layout {
	pw := picker.PaletteCols*2 + 2
	rw := w - pw
	if rw < 4 {
		rw = 4
	}
	bodyH := h - headerHeight - statusHeight
	gh := bodyH - formatsHeight
	if gh < 3 {
		gh = 3
	}

	return layout{
		palette:  rect{x: 0, y: headerHeight, w: pw, h: bodyH},
		gradient: rect{x: pw, y: headerHeight, w: rw, h: gh},
		formats:  rect{x: pw, y: headerHeight + gh, w: rw, h: formatsHeight},
		statusY:  h - 1,
	}
}

func (l layout) surface() picker.Surface {
	return picker.Surface{Width: l.gradient.w - 2, Height: l.gradient.h - 2}
}

func drawText(s tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	i := 0
	for _, r := range text {
		if maxWidth >= 0 && i >= maxWidth {
			return
		}
		s.SetContent(x+i, y, r, nil, style)
		i++
	}
}

func drawBox(s tcell.Screen, r rect, title string, style tcell.Style) {
	if r.w < 2 || r.h < 2 {
		return
	}
	for x := r.x + 1; x < r.x+r.w-1; x++ {
		s.SetContent(x, r.y, '─', nil, style)
		s.SetContent(x, r.y+r.h-1, '─', nil, style)
	}
	for y := r.y + 1; y < r.y+r.h-1; y++ {
		s.SetContent(r.x, y, '│', nil, style)
		s.SetContent(r.x+r.w-1, y, '│', nil, style)
	}
	s.SetContent(r.x, r.y, '╭', nil, style)
	s.SetContent(r.x+r.w-1, r.y, '╮', nil, style)
	s.SetContent(r.x, r.y+r.h-1, '╰', nil, style)
	s.SetContent(r.x+r.w-1, r.y+r.h-1, '╯', nil, style)

	if title != "" && len(title)+4 <= r.w {
		drawText(s, r.x+2, r.y, -1, " "+title+" ", style.Bold(true))
	}
}

func paint(s tcell.Screen, f picker.Frame, l layout, p palette) {
	base := tcell.StyleDefault.Background(p.bg).Foreground(p.fg)
	s.Fill(' ', base)

	border := func(active bool) tcell.Style {
		if active {
			return base.Foreground(p.accent)
		}
		return base.Foreground(p.border)
	}

	// Header
	x := 1
	drawText(s, x, 0, -1, "cascolor", base.Foreground(p.accent).Bold(true))
	x += len("cascolor") + 2
	for _, panel := range []picker.Panel{picker.PanelPalette, picker.PanelGradient, picker.PanelFormatList} {
		style := base.Foreground(p.dim)
		if panel == f.Panel {
			style = base.Foreground(p.accent).Bold(true).Underline(true)
		}
		drawText(s, x, 0, -1, panel.String(), style)
		x += len(panel.String()) + 2
	}

	paintPalette(s, f, l.palette, base, border(f.Panel == picker.PanelPalette))
	paintGradient(s, f, l.gradient, base, border(f.Panel == picker.PanelGradient))
	paintFormats(s, f, l.formats, base, p, border(f.Panel == picker.PanelFormatList))

	// Status line, replaced by the input prompt while editing
	if f.Editing {
		prompt := fmt.Sprintf(" Enter color > %s", f.Input)
		drawText(s, 0, l.statusY, -1, prompt, base.Foreground(p.accent).Bold(true))
		s.SetContent(len([]rune(prompt)), l.statusY, '█', nil, base.Foreground(p.accent))
		return
	}
	drawText(s, 0, l.statusY, -1, " "+f.Status, base)
}

func paintPalette(s tcell.Screen, f picker.Frame, r rect, base, border tcell.Style) {
	drawBox(s, r, "Palette", border)

	start, end := picker.PaletteWindow(f.PaletteRow, r.h-2)
	for i, row := range f.Palette[start:end] {
		for col, cell := range row {
			glyph := '▓'
			style := base.Foreground(rgb(cell.Color))
			if cell.Selected {
				glyph = '█'
				style = style.Bold(true)
			}
			s.SetContent(r.x+1+col*2, r.y+1+i, glyph, nil, style)
			s.SetContent(r.x+2+col*2, r.y+1+i, glyph, nil, style)
		}
	}
}

func paintGradient(s tcell.Screen, f picker.Frame, r rect, base, border tcell.Style) {
	drawBox(s, r, "Gradient", border)

	for y, row := range f.Gradient {
		for x, cell := range row {
			if cell.Selected {
				s.SetContent(r.x+1+x, r.y+1+y, '●', nil,
					base.Foreground(tcell.ColorWhite).Background(rgb(cell.Color)).Bold(true))
				continue
			}
			s.SetContent(r.x+1+x, r.y+1+y, '█', nil, base.Foreground(rgb(cell.Color)))
		}
	}
}

func paintFormats(s tcell.Screen, f picker.Frame, r rect, base tcell.Style, p palette, border tcell.Style) {
	drawBox(s, r, "Formats", border)
	width := r.w - 4

	y := r.y + 1
	drawText(s, r.x+2, y, -1, "████████", base.Foreground(rgb(f.Color)))
	name := f.Name
	if name == "" {
		name = "Current Color"
	}
	drawText(s, r.x+12, y, width-10, name, base)
	y += 2

	for _, row := range f.Formats {
		style := base
		if row.Selected {
			style = base.Foreground(p.accent).Bold(true)
		}
		drawText(s, r.x+2, y, -1, fmt.Sprintf("[%c]", row.Key), base.Foreground(p.accent))
		drawText(s, r.x+6, y, width-4, fmt.Sprintf("%-5s %s", row.Label, row.Value), style)
		y++
	}

	drawText(s, r.x+2, y, width, f.Perceptual.Lab+"  "+f.Perceptual.LCH, base.Foreground(p.dim))
	drawText(s, r.x+2, y+1, width, f.Perceptual.OKLab+"  "+f.Perceptual.OKLCH, base.Foreground(p.dim))
}
