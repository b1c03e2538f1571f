package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/medicare-api/internal/config"
	"github.com/harentsoaR/medicare-api/internal/metrics"
)

const geminiReply = `{
  "candidates": [{
    "content": {
      "parts": [{"text": "## Assessment\nLikely a **tension** headache.\n* Rest\n* Hydrate"}],
      "role": "model"
    }
  }]
}`

func geminiConfig(endpoint string) config.GeminiConfig {
	return config.GeminiConfig{
		APIKey:          "test-key",
		Endpoint:        endpoint,
		Model:           "gemini-test",
		Timeout:         2 * time.Second,
		CacheTTL:        time.Minute,
		BreakerFailures: 2,
	}
}

func TestGeminiClientAsk(t *testing.T) {
	var got GeminiRequestBody
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(geminiReply))
	}))
	defer srv.Close()

	m := metrics.New()
	g := NewGeminiClient(geminiConfig(srv.URL), m)

	raw := g.Ask(context.Background(), "hello \"doctor\"\nline two")
	assert.Equal(t, geminiReply, raw)
	require.Len(t, got.Contents, 1)
	require.Len(t, got.Contents[0].Parts, 1)
	assert.Equal(t, "hello \"doctor\"\nline two", got.Contents[0].Parts[0].Text)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AIRequests.WithLabelValues(metrics.AIOutcomeOK)))
}

func TestGeminiClientCachesByPrompt(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(geminiReply))
	}))
	defer srv.Close()

	m := metrics.New()
	g := NewGeminiClient(geminiConfig(srv.URL), m)

	assert.Equal(t, geminiReply, g.Ask(context.Background(), "same"))
	assert.Equal(t, geminiReply, g.Ask(context.Background(), "same"))
	g.Ask(context.Background(), "other")

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AIRequests.WithLabelValues(metrics.AIOutcomeCached)))
}

func TestGeminiClientNonSuccessIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"API key not valid"}}`))
	}))
	defer srv.Close()

	g := NewGeminiClient(geminiConfig(srv.URL), metrics.New())
	assert.Equal(t, "", g.Ask(context.Background(), "prompt"))
}

func TestGeminiClientTransportFailureIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	g := NewGeminiClient(geminiConfig(url), metrics.New())
	assert.Equal(t, "", g.Ask(context.Background(), "prompt"))
}

func TestGeminiClientBreakerOpens(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	m := metrics.New()
	g := NewGeminiClient(geminiConfig(srv.URL), m)

	for i := 0; i < 5; i++ {
		assert.Equal(t, "", g.Ask(context.Background(), "prompt"))
	}

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.AIRequests.WithLabelValues(metrics.AIOutcomeBreakerOpen)))
}

func TestGeminiClientDisabledWithoutKey(t *testing.T) {
	cfg := geminiConfig("http://127.0.0.1:1")
	cfg.APIKey = ""

	m := metrics.New()
	g := NewGeminiClient(cfg, m)

	assert.False(t, g.Enabled())
	assert.Equal(t, "", g.Ask(context.Background(), "prompt"))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AIRequests.WithLabelValues(metrics.AIOutcomeDisabled)))
}

func TestExtractText(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"gemini reply", geminiReply, "## Assessment\nLikely a **tension** headache.\n* Rest\n* Hydrate"},
		{"escapes", `{"text":"say \"hi\" \\ bye"}`, `say "hi" \ bye`},
		{"first of many", `{"a":[{"text":"one"}],"text":"two"}`, "one"},
		{"skips non-string text", `{"text":{"inner":"x"},"b":{"text":"y"}}`, "y"},
		{"value named text is not a key", `{"a":"text","b":"c"}`, ""},
		{"array of strings", `["text","value"]`, ""},
		{"absent", `{"candidates":[]}`, ""},
		{"empty", "", ""},
		{"not json", "upstream connect error", ""},
		{"truncated after value", `{"text":"kept","more":[`, "kept"},
		{"truncated inside value", `{"text":"cut`, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractText(tc.raw))
		})
	}
}

func TestGeminiClientCancelledCallersDoNotOpenBreaker(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(geminiReply))
	}))
	defer srv.Close()

	cfg := geminiConfig(srv.URL)
	cfg.CacheTTL = 0
	m := metrics.New()
	g := NewGeminiClient(cfg, m)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 5; i++ {
		assert.Equal(t, "", g.Ask(cancelled, "prompt"))
	}

	assert.Equal(t, geminiReply, g.Ask(context.Background(), "prompt"))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.AIRequests.WithLabelValues(metrics.AIOutcomeBreakerOpen)))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
