package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	otellog "go.opentelemetry.io/otel/log"

	"github.com/riskibarqy/esports-club/internal/platform/logging"
)

func TestIsQuietRequestLog(t *testing.T) {
	assert.True(t, isQuietRequestLog("http request", []any{"method", "GET", "path", "/healthz"}))
	assert.False(t, isQuietRequestLog("http request", []any{"path", "/api/application"}))
	assert.False(t, isQuietRequestLog("bot webhook request", []any{"path", "/healthz"}))
}

func TestLogAttributes(t *testing.T) {
	attrs := logAttributes([]any{"game", "Valorant", "player_count", 5, "dangling"})
	require.Len(t, attrs, 3)

	assert.Equal(t, "game", attrs[0].Key)
	assert.Equal(t, "Valorant", attrs[0].Value.AsString())
	assert.Equal(t, int64(5), attrs[1].Value.AsInt64())
	assert.Equal(t, otellog.KindEmpty, attrs[2].Value.Kind())
}

func TestLogValue_NestedMap(t *testing.T) {
	v := logValue(map[string]any{"team": "Lions Gold", "players": []string{"Casey", "Riley"}}, 0)
	require.Equal(t, otellog.KindMap, v.Kind())

	items := v.AsMap()
	require.Len(t, items, 2)
	assert.Equal(t, "players", items[0].Key)
	assert.Equal(t, otellog.KindSlice, items[0].Value.Kind())
}

func TestSeverityOf(t *testing.T) {
	assert.Equal(t, otellog.SeverityDebug, severityOf(logging.LevelDebug))
	assert.Equal(t, otellog.SeverityWarn, severityOf(logging.LevelWarn))
	assert.Equal(t, otellog.SeverityError, severityOf(logging.LevelError))
}
