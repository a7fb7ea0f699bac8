package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobboard"

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route, method and status.",
		},
		[]string{"path", "method", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	httpErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_errors_total",
			Help:      "Total number of failed requests by error code.",
		},
		[]string{"path", "method", "code"},
	)

	tokensIssuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_issued_total",
			Help:      "Total number of access tokens issued by role.",
		},
		[]string{"role"},
	)

	jobsPostedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobs_posted_total",
			Help:      "Total number of job listings created by contract type.",
		},
		[]string{"contract_type"},
	)

	jobCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "job_cache_lookups_total",
			Help:      "Job listing cache lookups by result (hit/miss/error).",
		},
		[]string{"result"},
	)
)

// Metrics records service metrics. A nil *Metrics is a no-op.
type Metrics struct{}

// NewMetrics returns the metrics recorder backed by the default registry.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordRequest observes a finished HTTP request.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	httpRequestsTotal.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(path, method).Observe(duration.Seconds())
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	httpErrorsTotal.WithLabelValues(path, method, code).Inc()
}

// TokenIssued counts an issued token.
func (m *Metrics) TokenIssued(role string) {
	if m == nil {
		return
	}
	tokensIssuedTotal.WithLabelValues(role).Inc()
}

// JobPosted counts a created job listing.
func (m *Metrics) JobPosted(contractType string) {
	if m == nil {
		return
	}
	jobsPostedTotal.WithLabelValues(contractType).Inc()
}

// JobCacheLookup counts a cache lookup outcome.
func (m *Metrics) JobCacheLookup(result string) {
	if m == nil {
		return
	}
	jobCacheTotal.WithLabelValues(result).Inc()
}
