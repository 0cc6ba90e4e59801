package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	prev := L()
	t.Cleanup(func() { Set(prev) })

	l, err := Init("warn", "json")
	require.NoError(t, err)
	assert.Same(t, l, L())
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	_, err := Init("loud", "console")
	assert.Error(t, err)
}

func TestSet(t *testing.T) {
	prev := L()
	t.Cleanup(func() { Set(prev) })

	nop := zap.NewNop()
	Set(nop)
	assert.Same(t, nop, L())
}
