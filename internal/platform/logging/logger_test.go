package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &out))
	return out
}

func TestLogger_WritesKeyValueFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelInfo, &buf)

	logger.Info("game added", "game", "Valorant", "player_count", 5, "error", errors.New("boom"))

	entry := decodeLine(t, &buf)
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "game added", entry["msg"])
	assert.Equal(t, "Valorant", entry["game"])
	assert.EqualValues(t, 5, entry["player_count"])
	assert.Equal(t, "boom", entry["error"])
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelWarn, &buf)

	logger.Info("ignored")
	logger.Debug("ignored too")

	assert.Zero(t, buf.Len())
}

func TestLogger_ContextAddsTraceIDs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelInfo, &buf)

	traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	spanID, _ := trace.SpanIDFromHex("0102030405060708")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.InfoContext(ctx, "traced")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "0102030405060708090a0b0c0d0e0f10", entry["trace_id"])
	assert.Equal(t, "0102030405060708", entry["span_id"])
}

func TestLogger_WithKeepsFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelInfo, &buf).With("component", "discordbot")

	logger.Warn("slow interaction", "command", "list_teams")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "discordbot", entry["component"])
	assert.Equal(t, "list_teams", entry["command"])
}

func TestLogger_NilSafe(t *testing.T) {
	var logger *Logger
	logger.Info("does not panic")
	require.NoError(t, logger.Sync())
}

func TestLogger_MirrorReceivesEnabledEntries(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelInfo, &buf)

	var got []string
	SetMirror(func(_ context.Context, level Level, msg string, args ...any) {
		got = append(got, level.String()+":"+msg)
	})
	t.Cleanup(func() { SetMirror(nil) })

	logger.Debug("filtered")
	logger.Warn("mirrored", "k", "v")

	assert.Equal(t, []string{"warn:mirrored"}, got)
}
