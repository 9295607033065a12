package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prasetyo-dev/boolsearch/internal/boolean"
	apperrors "github.com/prasetyo-dev/boolsearch/pkg/errors"
	"github.com/prasetyo-dev/boolsearch/pkg/logger"
)

// SearchResponse is the JSON body of /v1/search.
type SearchResponse struct {
	Query        string   `json:"query"`
	Operator     string   `json:"operator"`
	TotalResults int      `json:"total_results"`
	Results      []string `json:"results"`
	CacheHit     bool     `json:"cache_hit"`
}

// VerifyResponse is the JSON body of /v1/verify.
type VerifyResponse struct {
	Results []string        `json:"results"`
	Report  *boolean.Report `json:"report"`
}

// ExplainResponse is the JSON body of /v1/explain.
type ExplainResponse struct {
	Query       string   `json:"query"`
	Results     []string `json:"results"`
	Explanation string   `json:"explanation"`
}

// Handler exposes the Service over HTTP.
type Handler struct {
	service      *Service
	defaultLimit int
	maxResults   int
	logger       *slog.Logger
}

// NewHandler creates a Handler with the configured result limits.
func NewHandler(service *Service, defaultLimit, maxResults int) *Handler {
	return &Handler{
		service:      service,
		defaultLimit: defaultLimit,
		maxResults:   maxResults,
		logger:       slog.Default().With("component", "search-handler"),
	}
}

// Search handles GET /v1/search?q=...&limit=N.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()
	log := logger.FromContext(ctx)

	query, limit, ok := h.queryParams(w, r)
	if !ok {
		return
	}

	results, cacheHit, ready := h.service.Search(ctx, query, limit)
	if !ready {
		h.writeError(w, http.StatusServiceUnavailable, "index not built yet")
		return
	}

	log.Info("search completed",
		"query", query,
		"results", len(results),
		"cache_hit", cacheHit,
		"latency_ms", time.Since(start).Milliseconds(),
	)
	h.writeJSON(w, http.StatusOK, &SearchResponse{
		Query:        query,
		Operator:     boolean.Classify(query).Kind.String(),
		TotalResults: len(results),
		Results:      results,
		CacheHit:     cacheHit,
	})
}

// Verify handles GET /v1/verify?q=....
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query, limit, ok := h.queryParams(w, r)
	if !ok {
		return
	}

	report, results, ready := h.service.Verify(ctx, query, limit)
	if !ready {
		h.writeError(w, http.StatusServiceUnavailable, "index not built yet")
		return
	}
	if !report.LogicCorrect {
		logger.FromContext(ctx).Warn("verification found inconsistencies",
			"query", query,
			"issues", len(report.Issues),
		)
	}
	h.writeJSON(w, http.StatusOK, &VerifyResponse{Results: results, Report: report})
}

// Explain handles GET /v1/explain?q=....
func (h *Handler) Explain(w http.ResponseWriter, r *http.Request) {
	query, limit, ok := h.queryParams(w, r)
	if !ok {
		return
	}

	explanation, results, ready := h.service.Explain(r.Context(), query, limit)
	if !ready {
		h.writeError(w, http.StatusServiceUnavailable, "index not built yet")
		return
	}
	h.writeJSON(w, http.StatusOK, &ExplainResponse{
		Query:       query,
		Results:     results,
		Explanation: explanation,
	})
}

// Reindex handles POST /v1/reindex, rebuilding the index from the engine.
func (h *Handler) Reindex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.service.Rebuild(ctx); err != nil {
		logger.FromContext(ctx).Error("reindex failed", "error", err)
		h.writeError(w, apperrors.HTTPStatusCode(err), "reindex failed")
		return
	}
	docs, vocab, builtAt, _ := h.service.IndexInfo()
	h.writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"documents":  docs,
		"vocabulary": vocab,
		"built_at":   builtAt,
	})
}

// Stats handles GET /v1/stats with index counters.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	docs, vocab, builtAt, ok := h.service.IndexInfo()
	if !ok {
		h.writeError(w, http.StatusServiceUnavailable, "index not built yet")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"documents":  docs,
		"vocabulary": vocab,
		"built_at":   builtAt,
	})
}

// queryParams extracts and validates the q and limit parameters. A missing
// q is the only client error; everything else about the query text is
// handled by the evaluator's empty-result semantics.
func (h *Handler) queryParams(w http.ResponseWriter, r *http.Request) (string, int, bool) {
	query := r.URL.Query().Get("q")
	if query == "" {
		h.writeError(w, http.StatusBadRequest, "query parameter 'q' is required")
		return "", 0, false
	}

	limit := h.defaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			h.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return "", 0, false
		}
		if parsed > h.maxResults {
			parsed = h.maxResults
		}
		limit = parsed
	}
	return query, limit, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
