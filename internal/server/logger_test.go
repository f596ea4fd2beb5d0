package server

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, slog.LevelInfo)

	l.Debug("served", Field{"path", "/index.html"})
	assert.Zero(t, buf.Len(), "debug is below info")

	l.Info("Starting server", Field{"addr", ":8000"})
	l.Warn("Invalid HTTP request", Field{"error", errors.New("bad method")})
	l.Error("arena exhausted")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, `msg="Starting server"`)
	assert.Contains(t, out, "addr=:8000")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, `error="bad method"`)
	assert.Contains(t, out, "level=ERROR")
	assert.Equal(t, 3, strings.Count(out, "\n"))
}

func TestLoggerTruncatesLongStrings(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, slog.LevelDebug)

	l.Debug("served", Field{"path", "/" + strings.Repeat("x", 500)})

	out := buf.String()
	assert.Contains(t, out, "...[truncated]")
	assert.NotContains(t, out, strings.Repeat("x", 101))
}

func TestSanitizeValue(t *testing.T) {
	assert.Equal(t, "short", sanitizeValue("short"))
	assert.Equal(t, 42, sanitizeValue(42))
	assert.Len(t, sanitizeValue(strings.Repeat("a", 101)), 100+len("...[truncated]"))
}
