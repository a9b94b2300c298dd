package log

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(level Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return FromZap(zap.New(core), level), logs
}

func TestLoggerFields(t *testing.T) {
	l, logs := observed(LevelDebug)

	l.With(String("component", "world")).Info("wave spawned",
		Int("wave", 3),
		Int64("seed", 42),
		Uint64("digest", 7),
		Float64("x", 1.5),
		Bool("paused", false),
		Duration("elapsed", time.Second),
		Error(errors.New("boom")),
		Any("kinds", []string{"enemy"}),
	)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "wave spawned", entry.Message)
	ctx := entry.ContextMap()
	assert.Equal(t, "world", ctx["component"])
	assert.Equal(t, int64(3), ctx["wave"])
	assert.Equal(t, int64(42), ctx["seed"])
	assert.Equal(t, uint64(7), ctx["digest"])
	assert.Equal(t, 1.5, ctx["x"])
	assert.Equal(t, false, ctx["paused"])
	assert.Equal(t, time.Second, ctx["elapsed"])
	assert.Equal(t, "boom", ctx["error"])
}

func TestLoggerLevel(t *testing.T) {
	l, logs := observed(LevelWarn)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")
	assert.Equal(t, 1, logs.Len())

	child := l.With(String("k", "v"))
	l.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, child.GetLevel())
	child.Debug("now shown")
	assert.Equal(t, 2, logs.Len())
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warn":    LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"fatal":   LevelFatal,
		"":        LevelInfo,
		"chatty":  LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
	assert.Equal(t, "warn", LevelWarn.String())
}

func TestNewWithConfig(t *testing.T) {
	l, err := NewWithConfig(LevelInfo, "console")
	require.NoError(t, err)
	assert.Equal(t, LevelInfo, l.GetLevel())

	_, err = NewWithConfig(LevelInfo, "xml")
	require.Error(t, err)

	NewNop().Info("discarded")
}
