// Package display renders portraits to the terminal.
package display

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/abhisek/facecards/internal/people"
)

// Renderer shows a person's portrait to the user.
type Renderer interface {
	Show(p people.Person) error
}

// ITerm writes portraits using the iTerm2 inline image protocol, which is
// also understood by WezTerm and a few other emulators.
type ITerm struct {
	W      io.Writer
	Width  string // e.g. "300px", "40", "50%", "auto"
	Height string
}

// NewITerm creates an ITerm renderer writing to w.
func NewITerm(w io.Writer, width, height string) *ITerm {
	return &ITerm{W: w, Width: width, Height: height}
}

// Show writes the inline image escape sequence for the portrait.
func (r *ITerm) Show(p people.Person) error {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return fmt.Errorf("read portrait: %w", err)
	}
	if _, err := io.WriteString(r.W, InlineImage(data, r.Width, r.Height)); err != nil {
		return fmt.Errorf("write portrait: %w", err)
	}
	return nil
}

// InlineImage returns the OSC 1337 sequence that displays data inline.
func InlineImage(data []byte, width, height string) string {
	if width == "" {
		width = "auto"
	}
	if height == "" {
		height = "auto"
	}
	return fmt.Sprintf("\x1b]1337;File=inline=1;size=%d;width=%s;height=%s:%s\a\n",
		len(data), width, height, base64.StdEncoding.EncodeToString(data))
}

// Placeholder prints a neutral marker instead of the image. It never
// reveals the filename, which would give the answer away.
type Placeholder struct {
	W io.Writer
}

// Show prints the placeholder line.
func (r *Placeholder) Show(people.Person) error {
	_, err := io.WriteString(r.W, "[portrait]\n")
	return err
}
