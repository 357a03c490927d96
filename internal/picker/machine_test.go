package picker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casapps/cascolor/internal/color"
	"github.com/casapps/cascolor/internal/config"
)

type fakeClipboard struct {
	copied []string
	err    error
}

func (f *fakeClipboard) Copy(text string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = append(f.copied, text)
	return nil
}

type fakePrefs struct {
	theme      config.Theme
	saveErr    error
	remembered []string
}

func (f *fakePrefs) Theme() config.Theme { return f.theme }

func (f *fakePrefs) SetTheme(t config.Theme) error {
	f.theme = t
	return f.saveErr
}

func (f *fakePrefs) Remember(hex string) error {
	f.remembered = append(f.remembered, hex)
	return nil
}

func newTestMachine() (*Machine, *fakeClipboard, *fakePrefs) {
	cb := &fakeClipboard{}
	prefs := &fakePrefs{theme: config.ThemeDark}
	return &Machine{Clipboard: cb, Preferences: prefs}, cb, prefs
}

func press(m *Machine, s *State, keys ...Key) {
	for _, k := range keys {
		m.Handle(s, k)
	}
}

func typeText(m *Machine, s *State, text string) {
	for _, r := range text {
		m.Handle(s, RuneKey(r))
	}
}

func TestNewState(t *testing.T) {
	s := NewState(DefaultColor, color.FormatCMYK)

	assert.Equal(t, color.FromRGB(128, 128, 200), s.Color)
	assert.Equal(t, PanelGradient, s.Panel)
	assert.Equal(t, ModeNormal, s.Mode)
	assert.Equal(t, HelpText, s.Status)
	assert.Equal(t, 5, s.PaletteCol)
	assert.Equal(t, 15, s.PaletteRow)
	assert.Equal(t, 0.5, s.GradientX)
	assert.Equal(t, 0.5, s.GradientY)
	assert.Equal(t, 4, s.FormatIndex)
	assert.Equal(t, color.FormatCMYK, s.SelectedFormat())
	assert.False(t, s.Quit)
}

func TestPanelCycle(t *testing.T) {
	m, _, _ := newTestMachine()
	s := NewState(DefaultColor, color.FormatHex)
	s.Panel = PanelPalette

	press(m, s, Key{Code: KeyTab})
	assert.Equal(t, PanelGradient, s.Panel)
	assert.Equal(t, "Switched to: Gradient panel", s.Status)

	press(m, s, Key{Code: KeyTab})
	assert.Equal(t, PanelFormatList, s.Panel)
	assert.Equal(t, "Switched to: FormatList panel", s.Status)

	press(m, s, Key{Code: KeyTab})
	assert.Equal(t, PanelPalette, s.Panel)
	assert.Equal(t, "Switched to: Palette panel", s.Status)
}

func TestEditing_Accept(t *testing.T) {
	m, _, prefs := newTestMachine()
	s := NewState(DefaultColor, color.FormatHex)
	s.Panel = PanelFormatList

	press(m, s, RuneKey('i'))
	assert.Equal(t, ModeEditing, s.Mode)
	assert.Equal(t, EditHelpText, s.Status)

	typeText(m, s, "#112233")
	assert.Equal(t, "#112233", s.Input())

	press(m, s, Key{Code: KeyEnter})

	assert.Equal(t, color.FromRGB(0x11, 0x22, 0x33), s.Color)
	assert.Empty(t, s.Buffer)
	assert.Equal(t, ModeNormal, s.Mode)
	assert.Equal(t, PanelFormatList, s.Panel, "editing returns to the same panel")
	assert.Equal(t, "Color set to: #112233", s.Status)
	assert.Equal(t, []string{"#112233"}, prefs.remembered)
}

func TestEditing_NavigationKeysAreText(t *testing.T) {
	m, _, _ := newTestMachine()
	s := NewState(DefaultColor, color.FormatHex)

	press(m, s, RuneKey('i'))
	typeText(m, s, "qhjklct12")

	assert.False(t, s.Quit)
	assert.Equal(t, "qhjklct12", s.Input())
	assert.Equal(t, DefaultColor, s.Color)
}

func TestEditing_Invalid(t *testing.T) {
	m, _, prefs := newTestMachine()
	s := NewState(DefaultColor, color.FormatHex)

	press(m, s, RuneKey('i'))
	typeText(m, s, "notacolor")
	press(m, s, Key{Code: KeyEnter})

	assert.Equal(t, DefaultColor, s.Color)
	assert.Empty(t, s.Buffer)
	assert.Equal(t, ModeNormal, s.Mode)
	assert.Equal(t, "Invalid color format: notacolor", s.Status)
	assert.Empty(t, prefs.remembered)
}

func TestEditing_Cancel(t *testing.T) {
	m, _, _ := newTestMachine()
	s := NewState(DefaultColor, color.FormatHex)

	press(m, s, RuneKey('i'))
	typeText(m, s, "#0000")
	press(m, s, Key{Code: KeyEscape})

	assert.Equal(t, DefaultColor, s.Color)
	assert.Empty(t, s.Buffer)
	assert.Equal(t, ModeNormal, s.Mode)
	assert.Equal(t, "Input cancelled", s.Status)
	assert.False(t, s.Quit, "escape while editing only cancels")
}

func TestEditing_Backspace(t *testing.T) {
	m, _, _ := newTestMachine()
	s := NewState(DefaultColor, color.FormatHex)

	press(m, s, RuneKey('i'), Key{Code: KeyBackspace})
	assert.Empty(t, s.Buffer)

	typeText(m, s, "abc")
	press(m, s, Key{Code: KeyBackspace})
	assert.Equal(t, "ab", s.Input())
}

func TestEditing_ReentryClearsBuffer(t *testing.T) {
	m, _, _ := newTestMachine()
	s := NewState(DefaultColor, color.FormatHex)
	s.Buffer = []rune("stale")

	press(m, s, RuneKey('i'))
	assert.Empty(t, s.Buffer)
}

func TestEditing_ModifiedRunesIgnored(t *testing.T) {
	m, _, _ := newTestMachine()
	s := NewState(DefaultColor, color.FormatHex)

	press(m, s, RuneKey('i'), Key{Code: KeyRune, Rune: 'x', Mod: ModAlt})
	assert.Empty(t, s.Buffer)

	press(m, s, Key{Code: KeyRune, Rune: 'X', Mod: ModShift})
	assert.Equal(t, "X", s.Input())
}

func TestQuit(t *testing.T) {
	tests := []struct {
		name    string
		editing bool
		key     Key
		quit    bool
	}{
		{"q", false, RuneKey('q'), true},
		{"ctrl+q", false, Key{Code: KeyRune, Rune: 'q', Mod: ModCtrl}, true},
		{"escape", false, Key{Code: KeyEscape}, true},
		{"alt+escape", false, Key{Code: KeyEscape, Mod: ModAlt}, false},
		{"ctrl+c", false, Key{Code: KeyRune, Rune: 'c', Mod: ModCtrl}, true},
		{"ctrl+c while editing", true, Key{Code: KeyRune, Rune: 'c', Mod: ModCtrl}, true},
		{"q while editing", true, RuneKey('q'), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cb, _ := newTestMachine()
			s := NewState(DefaultColor, color.FormatHex)
			if tt.editing {
				s.Mode = ModeEditing
			}

			press(m, s, tt.key)
			assert.Equal(t, tt.quit, s.Quit)
			assert.Empty(t, cb.copied, "ctrl+c must not copy")
		})
	}
}

func TestUnrecognizedKeyIsNoop(t *testing.T) {
	m, cb, prefs := newTestMachine()
	s := NewState(DefaultColor, color.FormatHex)
	before := *s

	press(m, s, RuneKey('z'), Key{Code: KeyOther}, RuneKey('9'), Key{Code: KeyBackspace}, Key{Code: KeyEnter})

	assert.Equal(t, before, *s)
	assert.Empty(t, cb.copied)
	assert.Empty(t, prefs.remembered)
}

func TestPaletteNavigation(t *testing.T) {
	m, _, _ := newTestMachine()
	s := NewState(DefaultColor, color.FormatHex)
	s.Panel = PanelPalette

	press(m, s, RuneKey('l'))
	assert.Equal(t, 6, s.PaletteCol)
	assert.Equal(t, PaletteColor(6, 15), s.Color)
	assert.Equal(t, "Palette: col=6 row=15", s.Status)

	press(m, s, Key{Code: KeyDown})
	assert.Equal(t, 16, s.PaletteRow)
	assert.Equal(t, PaletteColor(6, 16), s.Color)

	press(m, s, RuneKey('k'), RuneKey('h'), Key{Code: KeyLeft})
	assert.Equal(t, 4, s.PaletteCol)
	assert.Equal(t, 15, s.PaletteRow)
	assert.Equal(t, PaletteColor(4, 15), s.Color)
}

func TestPaletteNavigation_ClampedEdgesAreNoops(t *testing.T) {
	m, _, _ := newTestMachine()
	s := NewState(DefaultColor, color.FormatHex)
	s.Panel = PanelPalette
	s.PaletteCol, s.PaletteRow = 9, 29

	press(m, s, RuneKey('l'), RuneKey('j'))
	assert.Equal(t, 9, s.PaletteCol)
	assert.Equal(t, 29, s.PaletteRow)
	assert.Equal(t, DefaultColor, s.Color, "no movement means no recompute")
	assert.Equal(t, HelpText, s.Status)

	s.PaletteCol, s.PaletteRow = 0, 0
	press(m, s, RuneKey('h'), RuneKey('k'))
	assert.Equal(t, 0, s.PaletteCol)
	assert.Equal(t, 0, s.PaletteRow)
	assert.Equal(t, DefaultColor, s.Color)
}

func TestPaletteMapping(t *testing.T) {
	h, sat, l := PaletteHSL(0, 0)
	assert.InDelta(t, 0, h, 1e-9)
	assert.InDelta(t, 0.8, sat, 1e-9)
	assert.InDelta(t, 0.2, l, 1e-9)

	h, sat, l = PaletteHSL(9, 29)
	assert.InDelta(t, 348, h, 1e-9)
	assert.InDelta(t, 0.8, sat, 1e-9)
	assert.InDelta(t, 0.74, l, 1e-9)

	assert.Equal(t, color.FromRGB(91, 10, 10), PaletteColor(0, 0))
}

func TestGradientNavigation(t *testing.T) {
	m, _, _ := newTestMachine()
	s := NewState(color.FromHSL(200, 0.5, 0.5), color.FormatHex)
	require.Equal(t, PanelGradient, s.Panel)

	press(m, s, RuneKey('h'))
	assert.InDelta(t, 0.45, s.GradientX, 1e-9)
	assert.Equal(t, "Gradient: sat=0.45 light=0.50", s.Status)

	press(m, s, Key{Code: KeyDown}, RuneKey('j'))
	assert.InDelta(t, 0.6, s.GradientY, 1e-9)

	h, sat, l := s.Color.HSL()
	assert.InDelta(t, 200, h, 2, "moving the gradient cursor keeps the hue")
	assert.InDelta(t, 0.45, sat, 0.02)
	assert.InDelta(t, 0.4, l, 0.01)

	press(m, s, RuneKey('k'))
	assert.InDelta(t, 0.55, s.GradientY, 1e-9)
}

func TestGradientNavigation_Clamps(t *testing.T) {
	m, _, _ := newTestMachine()
	s := NewState(color.FromRGB(255, 0, 0), color.FormatHex)
	s.GradientX, s.GradientY = 1, 0

	press(m, s, RuneKey('l'), RuneKey('k'))
	assert.Equal(t, 1.0, s.GradientX)
	assert.Equal(t, 0.0, s.GradientY)
	assert.Equal(t, "Gradient: sat=1.00 light=1.00", s.Status)
	assert.Equal(t, color.FromRGB(255, 255, 255), s.Color)

	s.GradientX, s.GradientY = 0.02, 0.98
	press(m, s, RuneKey('h'), RuneKey('j'))
	assert.Equal(t, 0.0, s.GradientX)
	assert.Equal(t, 1.0, s.GradientY)
	assert.Equal(t, color.FromRGB(0, 0, 0), s.Color)
}

func TestGradientNavigation_KeepsHueThroughAchromaticEdges(t *testing.T) {
	tests := []struct {
		name   string
		toEdge Key
		back   Key
	}{
		{"saturation zero", RuneKey('h'), RuneKey('l')},
		{"white", RuneKey('k'), RuneKey('j')},
		{"black", RuneKey('j'), RuneKey('k')},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := newTestMachine()
			s := NewState(DefaultColor, color.FormatHex)
			start, _, _ := s.Color.HSL()
			require.InDelta(t, 240, start, 0.5)

			for i := 0; i < 12; i++ {
				press(m, s, tt.toEdge)
			}
			_, sat, l := s.Color.HSL()
			require.True(t, sat == 0 || l == 0 || l == 1, "cursor should sit on an achromatic edge")

			press(m, s, tt.back)
			h, sat, _ := s.Color.HSL()
			require.Greater(t, sat, 0.0)
			assert.InDelta(t, 240, h, 3)
			assert.InDelta(t, 240, s.Hue, 1e-9)
		})
	}
}

func TestHueFollowsPaletteAndInput(t *testing.T) {
	m, _, _ := newTestMachine()
	s := NewState(DefaultColor, color.FormatHex)

	s.Panel = PanelPalette
	press(m, s, RuneKey('j'))
	assert.InDelta(t, 192, s.Hue, 1e-9)

	s.Panel = PanelGradient
	press(m, s, RuneKey('i'))
	typeText(m, s, "#00FF00")
	press(m, s, Key{Code: KeyEnter})
	assert.InDelta(t, 120, s.Hue, 1e-9)

	press(m, s, RuneKey('i'))
	typeText(m, s, "#808080")
	press(m, s, Key{Code: KeyEnter})
	assert.InDelta(t, 120, s.Hue, 1e-9, "a gray input keeps the previous hue")

	press(m, s, RuneKey('l'))
	h, _, _ := s.Color.HSL()
	assert.InDelta(t, 120, h, 3)
}

func TestFormatListNavigation(t *testing.T) {
	m, _, _ := newTestMachine()
	s := NewState(DefaultColor, color.FormatHex)
	s.Panel = PanelFormatList

	press(m, s, RuneKey('k'))
	assert.Equal(t, 0, s.FormatIndex)

	press(m, s, RuneKey('j'), Key{Code: KeyDown})
	assert.Equal(t, 2, s.FormatIndex)
	assert.Equal(t, color.FormatHSL, s.SelectedFormat())

	press(m, s, RuneKey('j'), RuneKey('j'), RuneKey('j'))
	assert.Equal(t, 4, s.FormatIndex)

	before := *s
	press(m, s, RuneKey('h'), Key{Code: KeyRight})
	assert.Equal(t, before, *s, "left/right do nothing in the format list")
}

func TestCopy(t *testing.T) {
	m, cb, prefs := newTestMachine()
	s := NewState(color.FromRGB(255, 87, 51), color.FormatRGB)

	press(m, s, RuneKey('c'))
	assert.Equal(t, []string{"rgb(255, 87, 51)"}, cb.copied)
	assert.Equal(t, "Copied RGB to clipboard: rgb(255, 87, 51)", s.Status)
	assert.Equal(t, []string{"#FF5733"}, prefs.remembered)
}

func TestQuickCopy(t *testing.T) {
	c := color.FromRGB(255, 87, 51)

	for i, f := range color.Formats {
		m, cb, _ := newTestMachine()
		s := NewState(c, color.FormatCMYK)

		press(m, s, RuneKey(rune('1'+i)))
		require.Len(t, cb.copied, 1)
		assert.Equal(t, c.Format(f), cb.copied[0])
		assert.Contains(t, s.Status, f.String())
		assert.Equal(t, 4, s.FormatIndex, "quick copy leaves the selection alone")
	}
}

func TestCopy_Failure(t *testing.T) {
	m, cb, prefs := newTestMachine()
	cb.err = errors.New("clipboard not available")
	s := NewState(DefaultColor, color.FormatHex)

	press(m, s, RuneKey('c'))
	assert.Equal(t, "Copy failed: clipboard not available", s.Status)
	assert.False(t, s.Quit)
	assert.Empty(t, prefs.remembered)

	m.Clipboard = nil
	press(m, s, RuneKey('1'))
	assert.Contains(t, s.Status, "Copy failed")
}

func TestThemeToggle(t *testing.T) {
	m, _, prefs := newTestMachine()
	s := NewState(DefaultColor, color.FormatHex)

	press(m, s, RuneKey('t'))
	assert.Equal(t, config.ThemeLight, prefs.theme)
	assert.Equal(t, "Theme: Light", s.Status)

	press(m, s, RuneKey('t'))
	assert.Equal(t, config.ThemeDark, prefs.theme)
	assert.Equal(t, "Theme: Dark", s.Status)

	prefs.theme = config.ThemeSystem
	press(m, s, RuneKey('t'))
	assert.Equal(t, config.ThemeDark, prefs.theme)
}

func TestThemeToggle_SaveFailure(t *testing.T) {
	m, _, prefs := newTestMachine()
	prefs.saveErr = errors.New("read-only file system")
	s := NewState(DefaultColor, color.FormatHex)

	press(m, s, RuneKey('t'))
	assert.False(t, s.Quit)
	assert.Contains(t, s.Status, "Theme: Light")
	assert.Contains(t, s.Status, "read-only file system")

	m.Preferences = nil
	press(m, s, RuneKey('t'))
	assert.Contains(t, s.Status, "unavailable")
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "ctrl+c", Key{Code: KeyRune, Rune: 'c', Mod: ModCtrl}.String())
	assert.Equal(t, "q", RuneKey('q').String())
	assert.Equal(t, "alt+esc", Key{Code: KeyEscape, Mod: ModAlt}.String())
	assert.Equal(t, "tab", Key{Code: KeyTab}.String())
}
