package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"

	"github.com/harentsoaR/medicare-api/internal/config"
	"github.com/harentsoaR/medicare-api/internal/metrics"
)

// errCallerGone marks calls abandoned by the patient's own request. They say
// nothing about upstream health and must not trip the breaker.
var errCallerGone = errors.New("caller went away")

// --- Gemini request/response bodies ---

type GeminiRequestPart struct {
	Text string `json:"text"`
}

type GeminiRequestContent struct {
	Role  string              `json:"role,omitempty"`
	Parts []GeminiRequestPart `json:"parts"`
}

type GeminiRequestBody struct {
	Contents []GeminiRequestContent `json:"contents"`
}

// GeminiClient sends prompts to the generateContent endpoint. Failures of
// any kind degrade to an empty response.
type GeminiClient struct {
	httpClient *http.Client
	endpoint   string
	model      string
	apiKey     string
	cache      *cache.Cache
	breaker    *gobreaker.CircuitBreaker
	metrics    *metrics.Metrics
}

func NewGeminiClient(cfg config.GeminiConfig, m *metrics.Metrics) *GeminiClient {
	g := &GeminiClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		model:      cfg.Model,
		apiKey:     cfg.APIKey,
		metrics:    m,
	}

	if cfg.CacheTTL > 0 {
		g.cache = cache.New(cfg.CacheTTL, 2*cfg.CacheTTL)
	}

	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 5
	}
	g.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "gemini",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errCallerGone)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("AI circuit breaker state changed")
		},
	})

	return g
}

func (g *GeminiClient) Enabled() bool {
	return g.apiKey != ""
}

// Ask returns the raw response body for prompt, or "" on any failure.
func (g *GeminiClient) Ask(ctx context.Context, prompt string) string {
	if !g.Enabled() {
		g.record(metrics.AIOutcomeDisabled)
		return ""
	}

	if g.cache != nil {
		if v, ok := g.cache.Get(prompt); ok {
			g.record(metrics.AIOutcomeCached)
			return v.(string)
		}
	}

	start := time.Now()
	out, err := g.breaker.Execute(func() (interface{}, error) {
		raw, err := g.generate(ctx, prompt)
		if err != nil && ctx.Err() != nil {
			return "", fmt.Errorf("%w: %w", errCallerGone, err)
		}
		return raw, err
	})
	if g.metrics != nil {
		g.metrics.AILatency.Observe(time.Since(start).Seconds())
	}

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			g.record(metrics.AIOutcomeBreakerOpen)
		} else {
			g.record(metrics.AIOutcomeError)
		}
		log.Warn().Err(err).Msg("AI request failed, continuing without AI text")
		return ""
	}

	raw := out.(string)
	if g.cache != nil {
		g.cache.Set(prompt, raw, cache.DefaultExpiration)
	}
	g.record(metrics.AIOutcomeOK)
	return raw
}

func (g *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(GeminiRequestBody{
		Contents: []GeminiRequestContent{
			{Parts: []GeminiRequestPart{{Text: prompt}}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	u := fmt.Sprintf("%s/%s:generateContent?key=%s", g.endpoint, g.model, url.QueryEscape(g.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Debug().Int("status", resp.StatusCode).Str("body", string(respBody)).Msg("Gemini error response")
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	return string(respBody), nil
}

func (g *GeminiClient) record(outcome string) {
	if g.metrics != nil {
		g.metrics.AIRequests.WithLabelValues(outcome).Inc()
	}
}

// ExtractText returns the string value of the first "text" key found in a
// JSON document, or "" when raw is not JSON or has no such key. A document
// cut short after that value still yields it.
func ExtractText(raw string) string {
	type frame struct {
		object    bool
		expectKey bool
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	var stack []frame
	key := ""

	valueSeen := func() {
		if n := len(stack); n > 0 && stack[n-1].object {
			stack[n-1].expectKey = true
		}
		key = ""
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			return ""
		}

		inKeyPosition := len(stack) > 0 && stack[len(stack)-1].object && stack[len(stack)-1].expectKey

		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{', '[':
				valueSeen()
				stack = append(stack, frame{object: v == '{', expectKey: v == '{'})
			case '}', ']':
				stack = stack[:len(stack)-1]
				key = ""
			}
		case string:
			if inKeyPosition {
				key = v
				stack[len(stack)-1].expectKey = false
				continue
			}
			if key == "text" {
				return v
			}
			valueSeen()
		default:
			valueSeen()
		}
	}
}
