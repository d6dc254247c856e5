package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Warn, ParseLevel(" warning "))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Info, ParseLevel("verbose"))
	assert.Equal(t, "error", Error.String())
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("pretty"))
}

func TestZapLogger_FieldsAndWith(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	var l Logger = &ZapLogger{z: zap.New(core)}

	l = l.With(map[string]any{"component": "formapi"})
	l.Warn("request failed", map[string]any{
		"status": 500,
		"error":  errors.New("boom"),
		"":       "ignored",
	})

	entries := logs.All()
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, zapcore.WarnLevel, e.Level)
	assert.Equal(t, "request failed", e.Message)

	ctx := e.ContextMap()
	assert.Equal(t, "formapi", ctx["component"])
	assert.EqualValues(t, 500, ctx["status"])
	assert.Equal(t, "boom", ctx["error"])
	_, hasEmpty := ctx[""]
	assert.False(t, hasEmpty)
}

func TestNewNop_DoesNotPanic(t *testing.T) {
	l := NewNop()
	l.Info("hello", nil)
	assert.Same(t, l, l.With(nil))
}
