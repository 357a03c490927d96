package config

import (
	"fmt"
	"strings"
)

// Theme selects the color scheme of the interactive picker
type Theme string

const (
	ThemeDark   Theme = "dark"
	ThemeLight  Theme = "light"
	ThemeSystem Theme = "system"
	ThemeAuto   Theme = "auto"
)

// ParseTheme accepts any casing of the four theme names
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case ThemeDark, ThemeLight, ThemeSystem, ThemeAuto:
		return t, nil
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

// Toggled flips Dark and Light. Any other theme collapses to Dark.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Label is the capitalized name shown in the status line
func (t Theme) Label() string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

// ResolveWith maps system/auto using an already known background
func (t Theme) ResolveWith(darkBackground bool) Theme {
	switch t {
	case ThemeDark, ThemeLight:
		return t
	}
	if darkBackground {
		return ThemeDark
	}
	return ThemeLight
}

// Settings holds the persisted user preferences
type Settings struct {
	General      GeneralSettings `yaml:"general"`
	Updates      UpdateSettings  `yaml:"updates"`
	UI           UISettings      `yaml:"ui"`
	ColorHistory []string        `yaml:"color_history"`
}

type GeneralSettings struct {
	Theme       Theme `yaml:"theme"`
	HistorySize int   `yaml:"history_size"`
}

type UpdateSettings struct {
	Channel            string `yaml:"channel"`
	CheckOnStartup     bool   `yaml:"check_on_startup"`
	CheckInBackground  bool   `yaml:"check_in_background"`
	PromptBeforeUpdate bool   `yaml:"prompt_before_update"`
}

type UISettings struct {
	ShowSystemTray         bool   `yaml:"show_system_tray"`
	RememberWindowPosition bool   `yaml:"remember_window_position"`
	DefaultColorFormat     string `yaml:"default_color_format"`
}

// DefaultSettings returns the configuration used when no file exists
// or the file cannot be read.
func DefaultSettings() *Settings {
	return &Settings{
		General: GeneralSettings{
			Theme:       ThemeDark,
			HistorySize: 20,
		},
		Updates: UpdateSettings{
			Channel:            "stable",
			CheckOnStartup:     true,
			CheckInBackground:  true,
			PromptBeforeUpdate: true,
		},
		UI: UISettings{
			ShowSystemTray:         true,
			RememberWindowPosition: true,
			DefaultColorFormat:     "hex",
		},
		ColorHistory: []string{},
	}
}

// validate normalizes fields that have a closed set of values
func (s *Settings) validate() error {
	theme, err := ParseTheme(string(s.General.Theme))
	if err != nil {
		return err
	}
	s.General.Theme = theme

	if s.General.HistorySize < 0 {
		return fmt.Errorf("history_size must not be negative, got %d", s.General.HistorySize)
	}
	if s.ColorHistory == nil {
		s.ColorHistory = []string{}
	}
	return nil
}

// remember moves hex to the front of the history, bounded by HistorySize
func (s *Settings) remember(hex string) {
	history := make([]string, 0, len(s.ColorHistory)+1)
	history = append(history, hex)
	for _, h := range s.ColorHistory {
		if !strings.EqualFold(h, hex) {
			history = append(history, h)
		}
	}
	if len(history) > s.General.HistorySize {
		history = history[:s.General.HistorySize]
	}
	s.ColorHistory = history
}
