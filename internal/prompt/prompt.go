// Package prompt reads one line of input from the user per turn.
package prompt

import (
	"context"
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrInterrupted is returned when the user presses Ctrl+C at the prompt.
var ErrInterrupted = errors.New("prompt interrupted")

// DefaultLabel is shown in front of the input.
const DefaultLabel = "Who is this? "

// Prompt reads a single line. ReadLine returns ctx.Err() when ctx is
// cancelled while waiting, io.EOF when input is exhausted, and
// ErrInterrupted on Ctrl+C.
type Prompt interface {
	ReadLine(ctx context.Context) (string, error)
}

// Mode names accepted by New.
const (
	ModeAuto  = "auto"
	ModeTUI   = "tui"
	ModePlain = "plain"
)

// New returns the prompt for mode. ModeAuto picks the TUI prompt when in
// is a terminal and the plain prompt otherwise.
func New(mode string, in *os.File, out io.Writer, label string) Prompt {
	if mode == ModeAuto {
		mode = ModePlain
		if term.IsTerminal(int(in.Fd())) {
			mode = ModeTUI
		}
	}
	if mode == ModeTUI {
		return NewTUI(in, out, label)
	}
	return NewPlain(in, out, label)
}
