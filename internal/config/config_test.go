package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadUsesDefaults(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "web/index.html", cfg.LandingPage)
	assert.Equal(t, "appointments.txt", cfg.AppointmentLog)
	assert.False(t, cfg.KeepAlive)
	assert.Equal(t, 20*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, "gemini-1.5-flash-latest", cfg.Gemini.Model)
	assert.Equal(t, uint32(5), cfg.Gemini.BreakerFailures)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 720*time.Hour, cfg.Booking.TTL)
}

func TestLoadReadsNestedValues(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GEMINI_API_KEY", "abc")
	t.Setenv("GEMINI_CACHE_TTL", "0s")
	t.Setenv("TEXTBELT_API_KEY", "tb")
	t.Setenv("BOOKING_REFERENCE_SECRET", "s3cret")
	t.Setenv("RATE_LIMIT_RPS", "0")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "abc", cfg.Gemini.APIKey)
	assert.Equal(t, time.Duration(0), cfg.Gemini.CacheTTL)
	assert.Equal(t, "tb", cfg.Textbelt.APIKey)
	assert.Equal(t, "s3cret", cfg.Booking.Secret)
	assert.Zero(t, cfg.RateLimit.RPS)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "fast")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsNegativeRateLimit(t *testing.T) {
	t.Setenv("RATE_LIMIT_BURST", "-1")
	_, err := Load()
	assert.Error(t, err)
}
