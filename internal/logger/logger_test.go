package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithWriter(&buf))
	l.Info("scores saved", "path", "/tmp/score")

	out := buf.String()
	assert.Contains(t, out, "scores saved")
	assert.Contains(t, out, "path=/tmp/score")
}

func TestNew_DebugFiltering(t *testing.T) {
	tests := []struct {
		name  string
		debug bool
		want  bool
	}{
		{"debug on", true, true},
		{"debug off", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(WithWriter(&buf), WithDebug(tt.debug))
			l.Debug("selected person")
			assert.Equal(t, tt.want, bytes.Contains(buf.Bytes(), []byte("selected person")))
		})
	}
}

func TestNew_Pretty(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithWriter(&buf), WithPretty(true))
	l.Warn("display failed", "person", "alice_jones")

	assert.Contains(t, buf.String(), "display failed")
	assert.Contains(t, buf.String(), "alice_jones")
}

func TestNop(t *testing.T) {
	l := Nop()
	assert.NotPanics(t, func() {
		l.Info("msg")
		l.With("k", "v").WithGroup("g").Error("msg")
	})
	assert.False(t, l.Handler().Enabled(context.Background(), slog.LevelError))
}
