package vector

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pavanmanishd/vector/internal/rawmem"
)

func observeLogs(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(level)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })
	return logs
}

func TestLogRealloc(t *testing.T) {
	logs := observeLogs(t, zapcore.DebugLevel)

	v := intVector(t, 1, 2, 3)
	require.NoError(t, v.Reserve(10))

	entries := logs.FilterMessage("vector reallocated").All()
	require.Len(t, entries, 4) // 0->1, 1->2, 2->4, 4->10

	last := entries[3].ContextMap()
	require.Equal(t, int64(4), last["old_capacity"])
	require.Equal(t, int64(10), last["new_capacity"])
	require.Equal(t, int64(3), last["size"])
}

func TestLogAllocFailure(t *testing.T) {
	logs := observeLogs(t, zapcore.WarnLevel)

	old := rawmem.MaxBytes
	rawmem.MaxBytes = 8
	defer func() { rawmem.MaxBytes = old }()

	v := New[int64]()
	require.NoError(t, v.PushBack(1))
	require.ErrorIs(t, v.PushBack(2), ErrAllocation)

	require.Zero(t, logs.FilterMessage("vector reallocated").Len())
	entries := logs.FilterMessage("vector allocation failed").All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
	require.Equal(t, int64(2), entries[0].ContextMap()["capacity"])
}

func TestSetLoggerNil(t *testing.T) {
	SetLogger(nil)
	require.NotNil(t, logger.Load())
	require.NoError(t, New[int]().PushBack(1))
}
