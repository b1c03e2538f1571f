package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "medicare"

// AI call outcomes.
const (
	AIOutcomeOK          = "ok"
	AIOutcomeCached      = "cached"
	AIOutcomeError       = "error"
	AIOutcomeBreakerOpen = "breaker_open"
	AIOutcomeDisabled    = "disabled"
)

// Metrics holds the service's collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	RequestDuration *prometheus.HistogramVec
	RequestTotal    *prometheus.CounterVec

	AIRequests       *prometheus.CounterVec
	AILatency        prometheus.Histogram
	Analyses         prometheus.Counter
	Bookings         prometheus.Counter
	BookingFailures  prometheus.Counter
	NotificationsSMS *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		RequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		AIRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ai_requests_total",
			Help:      "Symptom analysis prompts by outcome",
		}, []string{"outcome"}),
		AILatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ai_request_duration_seconds",
			Help:      "Latency of outbound AI calls",
			Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 20},
		}),
		Analyses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Symptom analyses rendered",
		}),
		Bookings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointments_booked_total",
			Help:      "Appointments appended to the booking log",
		}),
		BookingFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointment_log_failures_total",
			Help:      "Bookings that could not be written",
		}),
		NotificationsSMS: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sms_notifications_total",
			Help:      "Booking confirmation SMS by status",
		}, []string{"status"}),
	}

	m.registry.MustRegister(
		m.RequestDuration,
		m.RequestTotal,
		m.AIRequests,
		m.AILatency,
		m.Analyses,
		m.Bookings,
		m.BookingFailures,
		m.NotificationsSMS,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
