package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		verbose   bool
		wantDebug bool
		wantInfo  bool
	}{
		{name: "default shows warnings only", wantDebug: false, wantInfo: false},
		{name: "verbose shows info", verbose: true, wantDebug: false, wantInfo: true},
		{name: "debug shows everything", debug: true, wantDebug: true, wantInfo: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(&buf, tt.debug, tt.verbose)

			l.Debug("debug message")
			l.Info("info message")
			l.Warn("warn message")

			out := buf.String()
			assert.Equal(t, tt.wantDebug, bytes.Contains([]byte(out), []byte("debug message")))
			assert.Equal(t, tt.wantInfo, bytes.Contains([]byte(out), []byte("info message")))
			assert.Contains(t, out, "[WARN]  warn message")
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false, true)

	l.With("request_id", "abc").WithGroup("prompt").Info("built", "prompt_chars", 42)

	assert.Equal(t, "[INFO]  built request_id=abc prompt.prompt_chars=42\n", buf.String())
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), New(&buf, false, false))
	ctx = With(ctx, "provider", "gemini")

	Error(ctx, "evaluation failed", errors.New("boom"))

	assert.Equal(t, "[ERROR] evaluation failed provider=gemini error=boom\n", buf.String())
}
