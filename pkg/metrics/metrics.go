package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Latencia HTTP del gateway (segundos)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portal_http_request_duration_seconds",
			Help:    "Gateway HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Latencia de llamadas al backend core (segundos)
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portal_upstream_request_duration_seconds",
			Help:    "Upstream API call duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "path", "status"},
	)

	// Errores del backend core
	UpstreamErrorCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_upstream_error_count",
			Help: "Total number of failed upstream API calls",
		},
		[]string{"path", "status"},
	)

	// Logins por dominio y resultado
	LoginCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_login_count",
			Help: "Total number of login attempts",
		},
		[]string{"domain", "result"}, // result: ok, failed
	)

	// Sesiones activas emitidas menos cerradas
	ActiveSessions = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "portal_active_sessions",
			Help: "Sessions issued minus sessions cleared",
		},
		[]string{"domain"},
	)
)

// ObserveHTTPRequest records one gateway request.
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveUpstreamRequest records one upstream call.
func ObserveUpstreamRequest(method, path, status string, duration time.Duration) {
	UpstreamRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}
