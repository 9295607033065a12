// Package metrics defines the Prometheus metric collectors used by the
// retrieval service and exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for the service.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	QueriesTotal       *prometheus.CounterVec
	QueryLatency       *prometheus.HistogramVec
	QueryResultsCount  prometheus.Histogram
	VerificationsTotal *prometheus.CounterVec

	CacheHitsTotal   prometheus.Counter
	CacheMissesTotal prometheus.Counter

	DocsStoredTotal     prometheus.Counter
	IndexBuildsTotal    prometheus.Counter
	IndexBuildDuration  prometheus.Histogram
	IndexedDocuments    prometheus.Gauge
	VocabularySize      prometheus.Gauge
	SkippedRecordsTotal prometheus.Counter
}

// New creates and registers all Prometheus metrics with the default
// registry.
func New() *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by method, path, and status.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"method", "path"},
		),
		QueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "boolean_queries_total",
				Help: "Total Boolean queries by detected operator (AND, OR, NOT, AND_NOT, SINGLE, MALFORMED).",
			},
			[]string{"operator"},
		),
		QueryLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "boolean_query_latency_seconds",
				Help:    "Boolean query evaluation latency in seconds.",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
			[]string{"cache_status"},
		),
		QueryResultsCount: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "boolean_query_results_count",
				Help:    "Number of document ids returned per query.",
				Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
			},
		),
		VerificationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "boolean_verifications_total",
				Help: "Total verification runs by outcome (consistent, inconsistent).",
			},
			[]string{"outcome"},
		),
		CacheHitsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "query_cache_hits_total",
				Help: "Total number of query cache hits.",
			},
		),
		CacheMissesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "query_cache_misses_total",
				Help: "Total number of query cache misses.",
			},
		),
		DocsStoredTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "documents_stored_total",
				Help: "Total documents written to the storage engine.",
			},
		),
		IndexBuildsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "index_builds_total",
				Help: "Total inverted index builds.",
			},
		),
		IndexBuildDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "index_build_duration_seconds",
				Help:    "Wall-clock time of a full inverted index build.",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
			},
		),
		IndexedDocuments: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "indexed_documents",
				Help: "Number of documents in the current inverted index.",
			},
		),
		VocabularySize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "index_vocabulary_size",
				Help: "Number of distinct terms in the current inverted index.",
			},
		),
		SkippedRecordsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "corpus_skipped_records_total",
				Help: "Corpus records skipped for missing fields or parse errors.",
			},
		),
	}

	prometheus.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.QueriesTotal,
		m.QueryLatency,
		m.QueryResultsCount,
		m.VerificationsTotal,
		m.CacheHitsTotal,
		m.CacheMissesTotal,
		m.DocsStoredTotal,
		m.IndexBuildsTotal,
		m.IndexBuildDuration,
		m.IndexedDocuments,
		m.VocabularySize,
		m.SkippedRecordsTotal,
	)
	return m
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
