package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExtractFields(t *testing.T) {
	log, err := NewZapLogger("error")
	require.NoError(t, err)
	zl, ok := log.(*ZapLogger)
	require.True(t, ok)

	ctx := context.Background()
	ctx = context.WithValue(ctx, "trace_id", "tr-1")
	ctx = context.WithValue(ctx, "role", "admin")
	ctx = context.WithValue(ctx, "view", "vendors")
	ctx = context.WithValue(ctx, "worker_id", 3)
	ctx = context.WithValue(ctx, "task_id", "task-9")

	fields := zl.extractFields(ctx)
	assert.Contains(t, fields, zap.String("trace_id", "tr-1"))
	assert.Contains(t, fields, zap.String("role", "admin"))
	assert.Contains(t, fields, zap.String("view", "vendors"))
	assert.Contains(t, fields, zap.Int("worker_id", 3))
	assert.Contains(t, fields, zap.String("task_id", "task-9"))
}

func TestExtractFieldsEmptyContext(t *testing.T) {
	log, err := NewZapLogger("error")
	require.NoError(t, err)
	zl := log.(*ZapLogger)

	assert.Empty(t, zl.extractFields(context.Background()))
}
