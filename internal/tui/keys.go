package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/casapps/cascolor/internal/picker"
)

// KeyMap describes the bindings shown in the help footer. The bindings
// themselves are interpreted by picker.Machine.
type KeyMap struct {
	Panel     key.Binding
	Navigate  key.Binding
	Copy      key.Binding
	QuickCopy key.Binding
	Input     key.Binding
	Theme     key.Binding
	Quit      key.Binding
}

// EditKeyMap is shown while typing a color
type EditKeyMap struct {
	Apply  key.Binding
	Cancel key.Binding
	Delete key.Binding
}

// Keys is the normal-mode key map
var Keys = KeyMap{
	Panel: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch panel"),
	),
	Navigate: key.NewBinding(
		key.WithKeys("h", "j", "k", "l", "left", "down", "up", "right"),
		key.WithHelp("h/j/k/l", "navigate"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy"),
	),
	QuickCopy: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5"),
		key.WithHelp("1-5", "quick copy"),
	),
	Input: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "input"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// EditKeys is the editing-mode key map
var EditKeys = EditKeyMap{
	Apply: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Delete: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("⌫", "delete"),
	),
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Panel, k.Navigate, k.Copy, k.QuickCopy, k.Input, k.Theme, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Panel, k.Navigate},
		{k.Copy, k.QuickCopy},
		{k.Input, k.Theme, k.Quit},
	}
}

func (k EditKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Apply, k.Cancel, k.Delete}
}

func (k EditKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keyCodes = map[tea.KeyType]picker.KeyCode{
	tea.KeyEnter:     picker.KeyEnter,
	tea.KeyEsc:       picker.KeyEscape,
	tea.KeyBackspace: picker.KeyBackspace,
	tea.KeyTab:       picker.KeyTab,
	tea.KeyUp:        picker.KeyUp,
	tea.KeyDown:      picker.KeyDown,
	tea.KeyLeft:      picker.KeyLeft,
	tea.KeyRight:     picker.KeyRight,
}

// ctrlRunes maps the control keys the picker cares about back to letters
var ctrlRunes = map[tea.KeyType]rune{
	tea.KeyCtrlC: 'c',
	tea.KeyCtrlQ: 'q',
}

// translateKey converts a bubbletea key message into picker keys. A paste
// or a burst of runes yields one key per rune.
func translateKey(msg tea.KeyMsg) []picker.Key {
	var mod picker.Modifier
	if msg.Alt {
		mod |= picker.ModAlt
	}

	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		keys := make([]picker.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, picker.Key{Code: picker.KeyRune, Rune: r, Mod: mod})
		}
		return keys
	}

	if code, ok := keyCodes[msg.Type]; ok {
		return []picker.Key{{Code: code, Mod: mod}}
	}
	if r, ok := ctrlRunes[msg.Type]; ok {
		return []picker.Key{{Code: picker.KeyRune, Rune: r, Mod: mod | picker.ModCtrl}}
	}
	return []picker.Key{{Code: picker.KeyOther, Mod: mod}}
}
