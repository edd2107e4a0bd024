package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext_PrefersContextLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctxLogger := &Logger{zap.New(core).Sugar()}
	fallback := NewNop()

	ctx := WithLogger(context.Background(), ctxLogger)
	FromContext(ctx, fallback).WithComponent("registry").Infow("reservation created", "reservation_id", int64(1))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "reservation created", entry.Message)
	assert.Equal(t, "registry", entry.ContextMap()["component"])
	assert.Equal(t, int64(1), entry.ContextMap()["reservation_id"])
}

func TestFromContext_Fallback(t *testing.T) {
	fallback := NewNop()

	assert.Same(t, fallback, FromContext(context.Background(), fallback))
	assert.NotNil(t, FromContext(context.Background(), nil))
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	l, err := New(Config{Level: "loud", OutputPaths: []string{"stderr"}})

	require.NoError(t, err)
	assert.False(t, l.Desugar().Core().Enabled(zap.DebugLevel))
	assert.True(t, l.Desugar().Core().Enabled(zap.InfoLevel))
}
