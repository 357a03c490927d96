package screen

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/casapps/cascolor/internal/config"
	"github.com/casapps/cascolor/internal/picker"
)

// Backend drives a tcell screen for picker.Run
type Backend struct {
	screen tcell.Screen
	theme  func() config.Theme

	events chan tcell.Event
	done   chan struct{}
	wg     sync.WaitGroup
}

// New wraps s. theme is consulted on every draw and must return a
// resolved dark or light theme.
func New(s tcell.Screen, theme func() config.Theme) *Backend {
	if theme == nil {
		theme = func() config.Theme { return config.ThemeDark }
	}
	return &Backend{screen: s, theme: theme}
}

// NewTerminal opens the process terminal
func NewTerminal(theme func() config.Theme) (*Backend, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return New(s, theme), nil
}

// Init takes over the terminal and starts the event pump
func (b *Backend) Init() error {
	if err := b.screen.Init(); err != nil {
		return err
	}
	b.screen.HideCursor()
	b.screen.Clear()

	b.events = make(chan tcell.Event, 64)
	b.done = make(chan struct{})
	b.wg.Add(1)
	go b.pump()
	return nil
}

func (b *Backend) pump() {
	defer b.wg.Done()
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case b.events <- ev:
		case <-b.done:
			return
		}
	}
}

// Fini restores the terminal and stops the event pump
func (b *Backend) Fini() error {
	if b.done != nil {
		close(b.done)
	}
	b.screen.Fini()
	b.wg.Wait()
	return nil
}

// Surface is the gradient field size for the current terminal size
func (b *Backend) Surface() picker.Surface {
	w, h := b.screen.Size()
	return computeLayout(w, h).surface()
}

// Draw paints f and shows it
func (b *Backend) Draw(f picker.Frame) error {
	w, h := b.screen.Size()
	b.screen.Clear()
	paint(b.screen, f, computeLayout(w, h), paletteFor(b.theme()))
	b.screen.Show()
	return nil
}

// Poll waits up to timeout for a key press. Resizes are handled here and
// reported as no key.
func (b *Backend) Poll(timeout time.Duration) (picker.Key, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-b.events:
		switch ev := ev.(type) {
		case *tcell.EventKey:
			return translateKey(ev), true, nil
		case *tcell.EventResize:
			b.screen.Sync()
		}
		return picker.Key{}, false, nil
	case <-timer.C:
		return picker.Key{}, false, nil
	}
}

var keyCodes = map[tcell.Key]picker.KeyCode{
	tcell.KeyEnter:      picker.KeyEnter,
	tcell.KeyEscape:     picker.KeyEscape,
	tcell.KeyBackspace:  picker.KeyBackspace,
	tcell.KeyBackspace2: picker.KeyBackspace,
	tcell.KeyTab:        picker.KeyTab,
	tcell.KeyUp:         picker.KeyUp,
	tcell.KeyDown:       picker.KeyDown,
	tcell.KeyLeft:       picker.KeyLeft,
	tcell.KeyRight:      picker.KeyRight,
}

var ctrlRunes = map[tcell.Key]rune{
	tcell.KeyCtrlC: 'c',
	tcell.KeyCtrlQ: 'q',
}

func translateKey(ev *tcell.EventKey) picker.Key {
	var mod picker.Modifier
	m := ev.Modifiers()
	if m&tcell.ModShift != 0 {
		mod |= picker.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mod |= picker.ModCtrl
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		mod |= picker.ModAlt
	}

	if ev.Key() == tcell.KeyRune {
		return picker.Key{Code: picker.KeyRune, Rune: ev.Rune(), Mod: mod}
	}
	if code, ok := keyCodes[ev.Key()]; ok {
		return picker.Key{Code: code, Mod: mod}
	}
	if r, ok := ctrlRunes[ev.Key()]; ok {
		return picker.Key{Code: picker.KeyRune, Rune: r, Mod: mod | picker.ModCtrl}
	}
	return picker.Key{Code: picker.KeyOther, Mod: mod}
}
