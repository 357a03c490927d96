package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/casapps/cascolor/internal/picker"
	"github.com/casapps/cascolor/internal/tui/colors"
	"github.com/casapps/cascolor/internal/tui/components"
)

var panelTabs = []components.Tab{
	{Label: "Palette"},
	{Label: "Gradient"},
	{Label: "Formats"},
}

// layout is the size of every region for one terminal size
type layout struct {
	paletteWidth   int
	rightWidth     int
	bodyHeight     int
	gradientHeight int
}

func computeLayout(width, height int) layout {
	paletteWidth := int(float64(width) * PaletteWidthRatio)
	if minWidth := picker.PaletteCols*2 + 2; paletteWidth < minWidth {
		paletteWidth = minWidth
	}

	bodyHeight := height - TabBarHeight - HelpHeight
	gradientHeight := bodyHeight - FormatsHeight - StatusHeight
	if gradientHeight < 3 {
		gradientHeight = 3
	}

	return layout{
		paletteWidth:   paletteWidth,
		rightWidth:     width - paletteWidth,
		bodyHeight:     bodyHeight,
		gradientHeight: gradientHeight,
	}
}

// surface is the gradient field size inside its box
func (l layout) surface() picker.Surface {
	return picker.Surface{Width: l.rightWidth - 2, Height: l.gradientHeight - 2}
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.width < MinWidth || m.height < MinHeight {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", MinWidth, MinHeight, m.width, m.height))
	}

	pal := colors.For(m.theme())
	l := computeLayout(m.width, m.height)
	frame := picker.Project(m.state, l.surface())

	helpModel := m.help
	helpModel.Styles.ShortKey = lipgloss.NewStyle().Foreground(pal.Accent)
	helpModel.Styles.ShortDesc = lipgloss.NewStyle().Foreground(pal.Dim)
	helpModel.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(pal.Border)

	// === Input overlay replaces the dashboard while editing ===
	if frame.Editing {
		prompt := lipgloss.NewStyle().Foreground(pal.Accent).Bold(true).Render("> ")
		input := lipgloss.NewStyle().Foreground(pal.Foreground).Render(frame.Input + "█")
		content := lipgloss.JoinVertical(lipgloss.Left,
			"",
			" "+prompt+input,
			"",
			" "+lipgloss.NewStyle().Foreground(pal.Dim).Render("HEX, rgb(r, g, b) or hsl(h, s%, l%)"),
			" "+helpModel.View(EditKeys),
		)
		box := components.RenderBtopBox("Enter Color", content, PopupWidth, PopupHeight, pal.Accent)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}

	// === Header ===
	title := lipgloss.NewStyle().Foreground(pal.Accent).Bold(true).Render(" cascolor ")
	if m.version != "" {
		title += lipgloss.NewStyle().Foreground(pal.Dim).Render(m.version + " ")
	}
	activeTab := lipgloss.NewStyle().Foreground(pal.Accent).Bold(true).Underline(true).Padding(0, 1)
	inactiveTab := lipgloss.NewStyle().Foreground(pal.Dim).Padding(0, 1)
	header := title + components.RenderTabBar(panelTabs, int(frame.Panel), activeTab, inactiveTab)

	// === Body ===
	left := renderPalette(frame, l.paletteWidth, l.bodyHeight, pal)
	right := lipgloss.JoinVertical(lipgloss.Left,
		renderGradient(frame, l.rightWidth, l.gradientHeight, pal),
		renderFormats(frame, l.rightWidth, FormatsHeight, pal),
		renderStatus(frame, l.rightWidth, pal),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	footer := " " + helpModel.View(Keys)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func borderFor(active bool, pal colors.Palette) lipgloss.Color {
	if active {
		return pal.Accent
	}
	return pal.Border
}

func renderPalette(frame picker.Frame, width, height int, pal colors.Palette) string {
	cellWidth := (width - 2) / picker.PaletteCols
	if cellWidth < 1 {
		cellWidth = 1
	}

	start, end := picker.PaletteWindow(frame.PaletteRow, height-2)
	lines := make([]string, 0, end-start)
	for _, row := range frame.Palette[start:end] {
		var b strings.Builder
		for _, cell := range row {
			glyph := "▓"
			style := lipgloss.NewStyle().Foreground(colors.Of(cell.Color))
			if cell.Selected {
				glyph = "█"
				style = style.Bold(true)
			}
			b.WriteString(style.Render(strings.Repeat(glyph, cellWidth)))
		}
		lines = append(lines, b.String())
	}

	return components.RenderBtopBox("Color Palette", strings.Join(lines, "\n"), width, height,
		borderFor(frame.Panel == picker.PanelPalette, pal))
}

func renderGradient(frame picker.Frame, width, height int, pal colors.Palette) string {
	lines := make([]string, 0, len(frame.Gradient))
	for _, row := range frame.Gradient {
		var b strings.Builder
		for _, cell := range row {
			if cell.Selected {
				b.WriteString(lipgloss.NewStyle().
					Foreground(colors.CursorMark).
					Background(colors.Of(cell.Color)).
					Bold(true).
					Render("●"))
				continue
			}
			b.WriteString(lipgloss.NewStyle().Foreground(colors.Of(cell.Color)).Render("█"))
		}
		lines = append(lines, b.String())
	}

	return components.RenderBtopBox("Gradient Picker", strings.Join(lines, "\n"), width, height,
		borderFor(frame.Panel == picker.PanelGradient, pal))
}

func renderFormats(frame picker.Frame, width, height int, pal colors.Palette) string {
	fg := lipgloss.NewStyle().Foreground(pal.Foreground)
	accent := lipgloss.NewStyle().Foreground(pal.Accent)
	dim := lipgloss.NewStyle().Foreground(pal.Dim)

	swatch := lipgloss.NewStyle().Foreground(colors.Of(frame.Color)).Bold(true).Render("████████")
	lines := []string{
		"  " + swatch + "  " + fg.Render("Current Color"),
		"",
	}

	for _, row := range frame.Formats {
		style := fg
		marker := "  "
		if row.Selected {
			style = accent.Bold(true)
			marker = accent.Render("▌ ")
		}
		lines = append(lines, marker+
			accent.Render(fmt.Sprintf("[%c] ", row.Key))+
			style.Render(fmt.Sprintf("%-5s %s", row.Label, row.Value)))
	}

	name := frame.Name
	if name == "" {
		name = "-"
	}
	lines = append(lines,
		"",
		"  "+dim.Render("Name   ")+fg.Render(name),
		"  "+dim.Render(frame.Perceptual.Lab),
		"  "+dim.Render(frame.Perceptual.LCH),
		"  "+dim.Render(frame.Perceptual.OKLab),
		"  "+dim.Render(frame.Perceptual.OKLCH),
	)

	return components.RenderBtopBox("Color Formats (c: copy | 1-5: quick copy)", strings.Join(lines, "\n"), width, height,
		borderFor(frame.Panel == picker.PanelFormatList, pal))
}

func renderStatus(frame picker.Frame, width int, pal colors.Palette) string {
	style := lipgloss.NewStyle().Foreground(pal.Foreground)
	if strings.HasPrefix(frame.Status, "Copy failed") || strings.HasPrefix(frame.Status, "Invalid") {
		style = style.Foreground(pal.Error)
	}
	return components.RenderBtopBox("", " "+style.Render(frame.Status), width, StatusHeight, pal.Border)
}
