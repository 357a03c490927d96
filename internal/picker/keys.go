package picker

import "strings"

// KeyCode identifies a key independent of any terminal library
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyOther
)

// Modifier is a bit set of held modifier keys
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
)

// Key is a single key press. Rune is only meaningful for KeyRune.
type Key struct {
	Code KeyCode
	Rune rune
	Mod  Modifier
}

// RuneKey is a plain printable key press
func RuneKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// Is reports whether the key is the rune r, regardless of modifiers
func (k Key) Is(r rune) bool {
	return k.Code == KeyRune && k.Rune == r
}

// Has reports whether all of mod are held
func (k Key) Has(mod Modifier) bool {
	return k.Mod&mod == mod
}

var keyNames = map[KeyCode]string{
	KeyEnter:     "enter",
	KeyEscape:    "esc",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyOther:     "other",
}

// String renders the key the way bubbletea names keys, e.g. "ctrl+c"
func (k Key) String() string {
	var b strings.Builder
	if k.Has(ModCtrl) {
		b.WriteString("ctrl+")
	}
	if k.Has(ModAlt) {
		b.WriteString("alt+")
	}
	if k.Has(ModShift) {
		b.WriteString("shift+")
	}
	if k.Code == KeyRune {
		b.WriteRune(k.Rune)
	} else {
		b.WriteString(keyNames[k.Code])
	}
	return b.String()
}
