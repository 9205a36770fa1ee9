package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "path", "status"},
	)

	EntityWriteCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "entity_write_count",
			Help: "Total number of entity write operations",
		},
		[]string{"entity", "operation"},
	)

	HoursCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "project_hours_cache_lookups",
			Help: "Project hours cache lookups by result",
		},
		[]string{"result"}, // result: hit, miss
	)
)

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func IncrementEntityWrite(entity, operation string) {
	EntityWriteCount.WithLabelValues(entity, operation).Inc()
}

func IncrementCacheLookup(result string) {
	HoursCacheLookups.WithLabelValues(result).Inc()
}
