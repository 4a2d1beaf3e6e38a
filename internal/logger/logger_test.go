package logger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tubescout.log")
	log, err := New(Config{Level: "debug", File: path})
	require.NoError(t, err)

	log.With(String("component", "test")).Info("hello", Int("n", 1), Error(errors.New("boom")))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"component":"test"`)
	assert.Contains(t, string(data), `"error":"boom"`)
}

func TestNewWithoutFileIsNop(t *testing.T) {
	log, err := New(Config{})
	require.NoError(t, err)
	assert.Equal(t, NewNop(), log)
	assert.NoError(t, log.Sync())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("bogus"))
	assert.True(t, ValidLevel("info"))
	assert.False(t, ValidLevel("loud"))
}

func TestWrapForwardsToZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := Wrap(zap.New(core))
	log.Warn("careful", Bool("flag", true))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "careful", entries[0].Message)
	assert.Equal(t, true, entries[0].ContextMap()["flag"])
}

func TestDevelopmentAddsStacktraceToWarnings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dev.log")
	log, err := New(Config{Level: "info", File: path, Development: true})
	require.NoError(t, err)

	log.Warn("slow backend", Int("attempt", 2))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"attempt":2`)
	assert.Contains(t, string(data), `"stacktrace"`)
}
