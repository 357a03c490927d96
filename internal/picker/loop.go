package picker

import (
	"errors"
	"fmt"
	"time"

	"github.com/casapps/cascolor/internal/utils"
)

// PollInterval bounds how long the loop waits for input before redrawing
const PollInterval = 50 * time.Millisecond

// Backend is a terminal the loop can draw on and read keys from
type Backend interface {
	Init() error
	Fini() error
	Surface() Surface
	Draw(Frame) error
	// Poll waits up to timeout for a key. ok is false when none arrived.
	Poll(timeout time.Duration) (k Key, ok bool, err error)
}

// TerminalError is a failure of the rendering backend. It is the only
// error that ends a session.
type TerminalError struct {
	Op  string
	Err error
}

func (e *TerminalError) Error() string {
	return fmt.Sprintf("terminal %s failed: %v", e.Op, e.Err)
}

func (e *TerminalError) Unwrap() error { return e.Err }

// Run draws, polls and dispatches until s.Quit is set. Fini runs whenever
// Init succeeded, and a Fini failure is joined with any loop error so the
// caller sees both.
func Run(b Backend, m *Machine, s *State) (err error) {
	if err := b.Init(); err != nil {
		return &TerminalError{Op: "init", Err: err}
	}
	defer func() {
		if ferr := b.Fini(); ferr != nil {
			err = errors.Join(err, &TerminalError{Op: "fini", Err: ferr})
		}
	}()

	utils.Debug("Picker loop started")

	for !s.Quit {
		if err := b.Draw(Project(s, b.Surface())); err != nil {
			return &TerminalError{Op: "draw", Err: err}
		}

		k, ok, err := b.Poll(PollInterval)
		if err != nil {
			return &TerminalError{Op: "poll", Err: err}
		}
		if ok {
			m.Handle(s, k)
		}
	}

	utils.Debug("Picker loop finished")
	return nil
}
