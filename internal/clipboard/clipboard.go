package clipboard

import (
	"fmt"
	"os"
	"runtime"

	"github.com/atotto/clipboard"
)

// Kind classifies a clipboard failure
type Kind int

const (
	// InitFailed means no clipboard backend could be started
	InitFailed Kind = iota
	// CopyFailed means the backend rejected the text
	CopyFailed
	// NotAvailable means there is no clipboard to talk to (headless session)
	NotAvailable
)

func (k Kind) String() string {
	switch k {
	case InitFailed:
		return "clipboard initialization failed"
	case CopyFailed:
		return "clipboard copy failed"
	case NotAvailable:
		return "clipboard not available"
	default:
		return "clipboard error"
	}
}

// Error is returned by Copy
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Hooks over the OS clipboard, replaced in tests
var (
	writeAll    = clipboard.WriteAll
	unsupported = func() bool { return clipboard.Unsupported }
	headless    = isHeadless
)

// isHeadless reports a Unix session with neither X11 nor Wayland
func isHeadless() bool {
	switch runtime.GOOS {
	case "windows", "darwin":
		return false
	}
	return os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == ""
}

// Copy places text on the system clipboard
func Copy(text string) error {
	if headless() {
		return &Error{Kind: NotAvailable}
	}
	if unsupported() {
		return &Error{Kind: InitFailed, Err: fmt.Errorf("no xclip, xsel or wl-copy found")}
	}
	if err := writeAll(text); err != nil {
		return &Error{Kind: CopyFailed, Err: err}
	}
	return nil
}

// System is the OS clipboard as a value the picker can hold
type System struct{}

func (System) Copy(text string) error {
	return Copy(text)
}
