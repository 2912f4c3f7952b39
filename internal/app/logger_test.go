package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("info"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"), "unknown level falls back to info")
}

func TestNewLogger(t *testing.T) {
	dev := NewLogger("development", "debug")
	assert.True(t, dev.Core().Enabled(zapcore.DebugLevel))

	prod := NewLogger("production", "warn")
	assert.False(t, prod.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, prod.Core().Enabled(zapcore.WarnLevel))
}
