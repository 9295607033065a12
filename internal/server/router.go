package server

import (
	"net/http"
	"time"

	"github.com/prasetyo-dev/boolsearch/pkg/health"
	"github.com/prasetyo-dev/boolsearch/pkg/metrics"
	"github.com/prasetyo-dev/boolsearch/pkg/middleware"
)

// NewRouter builds the HTTP handler with all routes and middleware.
//
// Route table:
//
//	GET  /v1/search   → Boolean query evaluation
//	GET  /v1/verify   → evaluation plus logic verification report
//	GET  /v1/explain  → evaluation plus human-readable explanation
//	GET  /v1/stats    → index counters
//	POST /v1/reindex  → rebuild the inverted index from the engine
//	GET  /healthz     → liveness
//	GET  /readyz      → readiness (runs registered checks)
//
// Middleware chain: RequestID → Metrics → Timeout → mux.
func NewRouter(h *Handler, checker *health.Checker, m *metrics.Metrics, requestTimeout time.Duration) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/search", h.Search)
	mux.HandleFunc("GET /v1/verify", h.Verify)
	mux.HandleFunc("GET /v1/explain", h.Explain)
	mux.HandleFunc("GET /v1/stats", h.Stats)
	mux.HandleFunc("POST /v1/reindex", h.Reindex)

	mux.HandleFunc("GET /healthz", checker.LiveHandler())
	mux.HandleFunc("GET /readyz", checker.ReadyHandler())

	var chain http.Handler = mux
	if requestTimeout > 0 {
		chain = middleware.Timeout(requestTimeout)(chain)
	}
	if m != nil {
		chain = middleware.Metrics(m)(chain)
	}
	chain = middleware.RequestID(chain)
	return chain
}
