package prompt

import (
	"context"
	"fmt"
	"io"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/facecards/internal/ui/theme"
)

// TUI reads a line with an inline Bubble Tea text input. Each call runs a
// short-lived program so portraits printed between turns stay in the
// terminal scrollback.
type TUI struct {
	in    io.Reader
	out   io.Writer
	label string
}

// NewTUI creates a TUI prompt.
func NewTUI(in io.Reader, out io.Writer, label string) *TUI {
	return &TUI{in: in, out: out, label: label}
}

// ReadLine runs the input program until Enter, Ctrl+C or cancellation.
func (t *TUI) ReadLine(ctx context.Context) (string, error) {
	p := tea.NewProgram(newLineModel(t.label),
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	)
	final, err := p.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	if err != nil {
		return "", fmt.Errorf("run prompt: %w", err)
	}

	m, ok := final.(lineModel)
	if !ok {
		return "", fmt.Errorf("run prompt: unexpected model %T", final)
	}
	if m.interrupted {
		return "", ErrInterrupted
	}
	return m.value, nil
}

// lineModel is a single-line input that quits on Enter.
type lineModel struct {
	input       textinput.Model
	value       string
	done        bool
	interrupted bool
}

func newLineModel(label string) lineModel {
	ti := textinput.New()
	ti.Prompt = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label)
	ti.Placeholder = "first name, or: show score | save | quit"
	ti.Focus()
	return lineModel{input: ti}
}

func (m lineModel) Init() tea.Cmd {
	return nil
}

func (m lineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "enter":
			m.value = m.input.Value()
			m.done = true
			return m, tea.Quit
		case "ctrl+c":
			m.interrupted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m lineModel) View() tea.View {
	if m.done {
		// Leave the answered line behind without the placeholder.
		return tea.NewView(m.input.Prompt + m.value + "\n")
	}
	if m.interrupted {
		return tea.NewView("\n")
	}
	return tea.NewView(m.input.View())
}
