// Package middleware provides the HTTP middleware chain: request ids,
// Prometheus request metrics, and per-request timeouts.
package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prasetyo-dev/boolsearch/pkg/metrics"
)

// Metrics records request count and latency per method and route.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			route := metricRoute(r.URL.Path)
			m.HTTPRequestsTotal.
				WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).
				Inc()
			m.HTTPRequestDuration.
				WithLabelValues(r.Method, route).
				Observe(time.Since(started).Seconds())
		})
	}
}

// metricRoute maps a request path to a bounded label value; anything outside
// the known route table collapses to "other" to keep cardinality flat.
func metricRoute(path string) string {
	switch {
	case strings.HasPrefix(path, "/v1/"):
		return path
	case path == "/healthz", path == "/readyz":
		return path
	default:
		return "other"
	}
}

// statusWriter captures the response status for the metrics labels.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}
