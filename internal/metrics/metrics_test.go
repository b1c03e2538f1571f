package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersIndependently(t *testing.T) {
	// Two instances must not collide on a shared registry.
	a := New()
	b := New()

	a.Bookings.Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(a.Bookings))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Bookings))
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.AIRequests.WithLabelValues(AIOutcomeOK).Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `medicare_ai_requests_total{outcome="ok"} 1`)
}
