package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
)

type lineResult struct {
	line string
	err  error
}

// Plain reads newline-terminated lines from a reader. A background
// goroutine does the blocking reads so ReadLine can honor cancellation.
type Plain struct {
	r     io.Reader
	w     io.Writer
	label string

	once  sync.Once
	lines chan lineResult
}

// NewPlain creates a Plain prompt reading r and writing the label to w.
func NewPlain(r io.Reader, w io.Writer, label string) *Plain {
	return &Plain{
		r:     r,
		w:     w,
		label: label,
		lines: make(chan lineResult),
	}
}

// ReadLine prints the label and waits for the next line.
func (p *Plain) ReadLine(ctx context.Context) (string, error) {
	p.once.Do(func() { go p.scan() })

	if p.label != "" {
		fmt.Fprint(p.w, p.label)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return res.line, res.err
	}
}

func (p *Plain) scan() {
	defer close(p.lines)
	sc := bufio.NewScanner(p.r)
	for sc.Scan() {
		p.lines <- lineResult{line: sc.Text()}
	}
	if err := sc.Err(); err != nil {
		p.lines <- lineResult{err: fmt.Errorf("read input: %w", err)}
	}
}
