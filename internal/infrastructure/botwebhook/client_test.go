package botwebhook

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/esports-club/internal/domain/application"
	"github.com/riskibarqy/esports-club/internal/platform/logging"
	"github.com/riskibarqy/esports-club/internal/platform/resilience"
)

var sampleApplication = application.Application{
	Name:    "Ana Rivera",
	Discord: "ana#0001",
	Email:   "ana@example.edu",
	Phone:   "555-0100",
}

func newTestClient(t *testing.T, url string, breaker resilience.CircuitBreakerConfig) *Client {
	t.Helper()

	client, err := NewClient(Config{URL: url, Timeout: 2 * time.Second, CircuitBreaker: breaker}, logging.NewNop())
	require.NoError(t, err)
	return client
}

func TestClient_ForwardSendsJSONAndIdempotencyKey(t *testing.T) {
	var (
		gotBody map[string]string
		gotKey  string
		gotType string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = sonic.Unmarshal(raw, &gotBody)
		gotKey = r.Header.Get(IdempotencyHeader)
		gotType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"Application posted to Discord"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL+"/webhook/application", resilience.CircuitBreakerConfig{})
	result, err := client.Forward(context.Background(), sampleApplication, "key-1")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.True(t, result.Success)
	assert.Equal(t, "Application posted to Discord", result.Message)
	assert.Equal(t, "key-1", gotKey)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, map[string]string{
		"name":    "Ana Rivera",
		"discord": "ana#0001",
		"email":   "ana@example.edu",
		"phone":   "555-0100",
	}, gotBody)
}

func TestClient_ForwardReturnsBotErrorStatusAsResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"success":false,"message":"Discord client not ready"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, resilience.CircuitBreakerConfig{})
	result, err := client.Forward(context.Background(), sampleApplication, "key-2")
	require.NoError(t, err)

	assert.Equal(t, http.StatusServiceUnavailable, result.StatusCode)
	assert.False(t, result.Success)
	assert.Equal(t, "Discord client not ready", result.Message)
}

func TestClient_ForwardFailsOnUnreadableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>gateway</html>"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, resilience.CircuitBreakerConfig{})
	_, err := client.Forward(context.Background(), sampleApplication, "key-3")
	require.Error(t, err)
	assert.False(t, isCircuitFailure(err))
}

func TestClient_ForwardOpensCircuitOnTransportFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := newTestClient(t, url, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})

	for i := 0; i < 2; i++ {
		_, err := client.Forward(context.Background(), sampleApplication, "")
		require.Error(t, err)
		assert.True(t, isCircuitFailure(err))
	}

	_, err := client.Forward(context.Background(), sampleApplication, "")
	require.ErrorIs(t, err, resilience.ErrCircuitOpen)
}

func TestClient_BotErrorsDoNotTripCircuit(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"message":"boom"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 1,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})

	for i := 0; i < 3; i++ {
		result, err := client.Forward(context.Background(), sampleApplication, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
	}
	assert.EqualValues(t, 3, calls.Load())
}

func TestNewClient_RejectsInvalidURL(t *testing.T) {
	for _, raw := range []string{"", "ftp://bot/webhook", "http://"} {
		_, err := NewClient(Config{URL: raw}, nil)
		assert.Error(t, err, raw)
	}
}

func TestBuildCurlPreview_RedactsBody(t *testing.T) {
	preview := buildCurlPreview("http://bot:3001/webhook/application", "it's-a-key", 42)

	assert.Contains(t, preview, "curl -X POST 'http://bot:3001/webhook/application'")
	assert.Contains(t, preview, `'Idempotency-Key: it'"'"'s-a-key'`)
	assert.Contains(t, preview, "'<42 bytes redacted>'")
	assert.NotContains(t, preview, "ana@example.edu")
}
