package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   LogLevelDebug,
		"INFO":    LogLevelInfo,
		"":        LogLevelInfo,
		"warning": LogLevelWarn,
		" error ": LogLevelError,
	}
	for in, want := range cases {
		got, err := ParseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLogLevel("verbose")
	assert.Error(t, err)
}

func TestNew_JSONHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: LogLevelWarn, Format: "json", Output: &buf})

	logger.Info("chat.turn.start", "session_id", "s1")
	assert.Empty(t, buf.String())

	logger.Warn("chat.handoff.notice_failed", "session_id", "s1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "chat.handoff.notice_failed", entry["msg"])
	assert.Equal(t, "s1", entry["session_id"])
	assert.Equal(t, "WARN", entry["level"])
}

func TestNew_ConsoleUsesZerolog(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: LogLevelDebug, Format: "console", Output: &buf})

	_, ok := logger.(*ZerologAdapter)
	require.True(t, ok, "expected zerolog adapter, got %T", logger)

	logger.Debug("runner.turn", "agent", "CareerAgent", "dangling")
	out := buf.String()
	assert.Contains(t, out, "runner.turn")
	assert.Contains(t, out, "CareerAgent")
	assert.NotContains(t, out, "dangling")
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", LogLevelDebug.String())
	assert.Equal(t, "ERROR", LogLevelError.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestNoOpLogger(t *testing.T) {
	var l Logger = NoOpLogger{}
	l.Debug("x")
	l.Info("x", "k", "v")
	l.Warn("x")
	l.Error("x")
}
