package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "aurora"

var (
	registerOnce sync.Once

	httpRequestsTotal  *prometheus.CounterVec
	httpLatencySeconds *prometheus.HistogramVec
	httpErrorsTotal    *prometheus.CounterVec

	readingsTotal    *prometheus.CounterVec
	readingFallbacks prometheus.Counter
	emailDispatches  *prometheus.CounterVec
	leadWritesTotal  *prometheus.CounterVec
	contactMessages  *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used by the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		httpLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_latency_seconds",
			Help:      "Latency distribution for API requests.",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0, 5.0, 15.0},
		}, []string{"method", "route"})

		httpErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_errors_total",
			Help:      "Total number of error responses returned by API endpoints.",
		}, []string{"method", "route", "status"})

		readingsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "readings_generated_total",
			Help:      "Readings produced, by the strategy that produced them.",
		}, []string{"strategy"})

		readingFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reading_fallbacks_total",
			Help:      "Delegated generations that fell back to the template.",
		})

		emailDispatches = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "email_dispatch_total",
			Help:      "Notification dispatch attempts by mode and outcome.",
		}, []string{"mode", "outcome"})

		leadWritesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lead_writes_total",
			Help:      "Background lead inserts by outcome.",
		}, []string{"outcome"})

		contactMessages = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_messages_total",
			Help:      "Contact form submissions by outcome.",
		}, []string{"outcome"})

		prometheus.MustRegister(
			httpRequestsTotal, httpLatencySeconds, httpErrorsTotal,
			readingsTotal, readingFallbacks, emailDispatches, leadWritesTotal, contactMessages,
		)
	})
}

// HTTPRequests exposes the counter for API requests.
func HTTPRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return httpRequestsTotal
}

// HTTPLatency exposes the latency histogram for API requests.
func HTTPLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return httpLatencySeconds
}

// HTTPErrors exposes the counter for API error responses.
func HTTPErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return httpErrorsTotal
}

// Readings exposes the generated readings counter.
func Readings() *prometheus.CounterVec {
	RegisterMetrics()
	return readingsTotal
}

// ReadingFallbacks exposes the fallback counter.
func ReadingFallbacks() prometheus.Counter {
	RegisterMetrics()
	return readingFallbacks
}

// EmailDispatches exposes the dispatch counter.
func EmailDispatches() *prometheus.CounterVec {
	RegisterMetrics()
	return emailDispatches
}

// LeadWrites exposes the lead insert counter.
func LeadWrites() *prometheus.CounterVec {
	RegisterMetrics()
	return leadWritesTotal
}

// ContactMessages exposes the contact submission counter.
func ContactMessages() *prometheus.CounterVec {
	RegisterMetrics()
	return contactMessages
}
