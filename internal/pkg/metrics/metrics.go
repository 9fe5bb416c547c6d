package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "findup_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "findup_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	relationshipsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "findup_relationships_created_total",
		Help: "Count of enrollments and applications created",
	}, []string{"kind"})

	relationshipsWithdrawn = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "findup_relationships_withdrawn_total",
		Help: "Count of enrollments and applications withdrawn",
	}, []string{"kind"})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RelationshipCreated counts a successful enrollment or application insert.
// kind is "enrollment" or "application".
func RelationshipCreated(kind string) {
	relationshipsCreated.WithLabelValues(kind).Inc()
}

// RelationshipWithdrawn counts a successful withdrawal.
func RelationshipWithdrawn(kind string) {
	relationshipsWithdrawn.WithLabelValues(kind).Inc()
}
