package picker

import (
	"fmt"

	"github.com/casapps/cascolor/internal/color"
	"github.com/casapps/cascolor/internal/config"
	"github.com/casapps/cascolor/internal/utils"
)

// Clipboard receives copy requests
type Clipboard interface {
	Copy(text string) error
}

// Preferences is the slice of user configuration the picker reads and writes
type Preferences interface {
	Theme() config.Theme
	SetTheme(config.Theme) error
	Remember(hex string) error
}

// Machine applies key presses to a State. Clipboard and preferences are
// only touched on copy, theme toggle and accepted input. Their failures
// end up in the status line and never stop the session.
type Machine struct {
	Clipboard   Clipboard
	Preferences Preferences
}

// Handle applies one key press to s
func (m *Machine) Handle(s *State, k Key) {
	if k.Has(ModCtrl) && k.Is('c') {
		s.Quit = true
		return
	}

	switch s.Mode {
	case ModeEditing:
		m.handleEditing(s, k)
	default:
		m.handleNormal(s, k)
	}
}

func (m *Machine) handleEditing(s *State, k Key) {
	switch k.Code {
	case KeyEnter:
		m.applyInput(s)
	case KeyEscape:
		s.Buffer = s.Buffer[:0]
		s.Mode = ModeNormal
		s.Status = "Input cancelled"
	case KeyBackspace:
		if len(s.Buffer) > 0 {
			s.Buffer = s.Buffer[:len(s.Buffer)-1]
		}
	case KeyRune:
		if !k.Has(ModCtrl) && !k.Has(ModAlt) {
			s.Buffer = append(s.Buffer, k.Rune)
		}
	}
}

func (m *Machine) applyInput(s *State) {
	text := s.Input()

	if c, err := color.Parse(text); err != nil {
		utils.Debug("Rejected color input %q: %v", text, err)
		s.Status = fmt.Sprintf("Invalid color format: %s", text)
	} else {
		s.Color = c
		if h, sat, _ := c.HSL(); sat > 0 {
			s.Hue = h
		}
		s.Status = fmt.Sprintf("Color set to: %s", text)
		m.remember(c)
	}

	s.Buffer = s.Buffer[:0]
	s.Mode = ModeNormal
}

func (m *Machine) handleNormal(s *State, k Key) {
	switch k.Code {
	case KeyEscape:
		if k.Mod == 0 {
			s.Quit = true
		}
	case KeyTab:
		s.Panel = s.Panel.Next()
		s.Status = fmt.Sprintf("Switched to: %s panel", s.Panel)
	case KeyLeft:
		m.moveLeft(s)
	case KeyRight:
		m.moveRight(s)
	case KeyUp:
		m.moveUp(s)
	case KeyDown:
		m.moveDown(s)
	case KeyRune:
		m.handleRune(s, k.Rune)
	}
}

func (m *Machine) handleRune(s *State, r rune) {
	switch r {
	case 'q':
		s.Quit = true
	case 'i':
		s.Mode = ModeEditing
		s.Buffer = s.Buffer[:0]
		s.Status = EditHelpText
	case 't':
		m.toggleTheme(s)
	case 'c':
		m.copy(s, s.SelectedFormat())
	case 'h':
		m.moveLeft(s)
	case 'j':
		m.moveDown(s)
	case 'k':
		m.moveUp(s)
	case 'l':
		m.moveRight(s)
	case '1', '2', '3', '4', '5':
		m.copy(s, color.Formats[r-'1'])
	}
}

func (m *Machine) moveLeft(s *State) {
	switch s.Panel {
	case PanelPalette:
		if s.PaletteCol > 0 {
			s.PaletteCol--
			fromPalette(s)
		}
	case PanelGradient:
		s.GradientX = clamp01(s.GradientX - GradientStep)
		fromGradient(s)
	case PanelFormatList:
	}
}

func (m *Machine) moveRight(s *State) {
	switch s.Panel {
	case PanelPalette:
		if s.PaletteCol < PaletteCols-1 {
			s.PaletteCol++
			fromPalette(s)
		}
	case PanelGradient:
		s.GradientX = clamp01(s.GradientX + GradientStep)
		fromGradient(s)
	case PanelFormatList:
	}
}

func (m *Machine) moveUp(s *State) {
	switch s.Panel {
	case PanelPalette:
		if s.PaletteRow > 0 {
			s.PaletteRow--
			fromPalette(s)
		}
	case PanelGradient:
		s.GradientY = clamp01(s.GradientY - GradientStep)
		fromGradient(s)
	case PanelFormatList:
		if s.FormatIndex > 0 {
			s.FormatIndex--
		}
	}
}

func (m *Machine) moveDown(s *State) {
	switch s.Panel {
	case PanelPalette:
		if s.PaletteRow < PaletteRows-1 {
			s.PaletteRow++
			fromPalette(s)
		}
	case PanelGradient:
		s.GradientY = clamp01(s.GradientY + GradientStep)
		fromGradient(s)
	case PanelFormatList:
		if s.FormatIndex < len(color.Formats)-1 {
			s.FormatIndex++
		}
	}
}

func fromPalette(s *State) {
	s.Hue, _, _ = PaletteHSL(s.PaletteCol, s.PaletteRow)
	s.Color = PaletteColor(s.PaletteCol, s.PaletteRow)
	s.Status = fmt.Sprintf("Palette: col=%d row=%d", s.PaletteCol, s.PaletteRow)
}

// fromGradient keeps s.Hue and takes saturation and lightness from the
// gradient cursor.
func fromGradient(s *State) {
	s.Color = GradientColor(s.Hue, s.GradientX, s.GradientY)
	s.Status = fmt.Sprintf("Gradient: sat=%.2f light=%.2f", s.GradientX, 1-s.GradientY)
}

func (m *Machine) toggleTheme(s *State) {
	if m.Preferences == nil {
		s.Status = "Theme: preferences unavailable"
		return
	}

	next := m.Preferences.Theme().Toggled()
	if err := m.Preferences.SetTheme(next); err != nil {
		utils.Warn("Failed to save theme: %v", err)
		s.Status = fmt.Sprintf("Theme: %s (not saved: %v)", next.Label(), err)
		return
	}
	s.Status = fmt.Sprintf("Theme: %s", next.Label())
}

func (m *Machine) copy(s *State, f color.Format) {
	text := s.Color.Format(f)

	if m.Clipboard == nil {
		s.Status = "Copy failed: no clipboard"
		return
	}
	if err := m.Clipboard.Copy(text); err != nil {
		utils.Debug("Copy of %s failed: %v", f, err)
		s.Status = fmt.Sprintf("Copy failed: %v", err)
		return
	}

	s.Status = fmt.Sprintf("Copied %s to clipboard: %s", f, text)
	m.remember(s.Color)
}

func (m *Machine) remember(c color.Color) {
	if m.Preferences == nil {
		return
	}
	if err := m.Preferences.Remember(c.Hex()); err != nil {
		utils.Warn("Failed to record color history: %v", err)
	}
}
