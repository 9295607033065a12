// Package server wires the Boolean retrieval core behind an HTTP API:
// /v1/search, /v1/verify, /v1/explain, /v1/reindex, plus health and metrics
// endpoints.
package server

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/prasetyo-dev/boolsearch/internal/analyzer"
	"github.com/prasetyo-dev/boolsearch/internal/boolean"
	"github.com/prasetyo-dev/boolsearch/internal/cache"
	"github.com/prasetyo-dev/boolsearch/internal/index"
	"github.com/prasetyo-dev/boolsearch/internal/storage"
	"github.com/prasetyo-dev/boolsearch/pkg/metrics"
)

// searchState bundles one built index with its evaluator and verifier. The
// whole bundle is swapped atomically on reindex, so in-flight queries keep
// a consistent view.
type searchState struct {
	index    *index.Index
	eval     *boolean.Evaluator
	verifier *boolean.Verifier
	builtAt  time.Time
}

// Service owns the engine, the current index state, and the optional query
// cache.
type Service struct {
	engine   storage.Engine
	analyzer *analyzer.Analyzer
	cache    *cache.QueryCache
	metrics  *metrics.Metrics
	state    atomic.Pointer[searchState]
	logger   *slog.Logger
}

// NewService creates a Service. cache and m may be nil.
func NewService(engine storage.Engine, a *analyzer.Analyzer, qc *cache.QueryCache, m *metrics.Metrics) *Service {
	return &Service{
		engine:   engine,
		analyzer: a,
		cache:    qc,
		metrics:  m,
		logger:   slog.Default().With("component", "search-service"),
	}
}

// Rebuild constructs a fresh inverted index from the engine and swaps it
// in, invalidating any cached query results.
func (s *Service) Rebuild(ctx context.Context) error {
	start := time.Now()
	ix, err := index.Build(ctx, s.engine, s.analyzer)
	if err != nil {
		return err
	}

	eval := boolean.NewEvaluator(ix, s.analyzer)
	s.state.Store(&searchState{
		index:    ix,
		eval:     eval,
		verifier: boolean.NewVerifier(eval),
		builtAt:  time.Now().UTC(),
	})

	if s.metrics != nil {
		s.metrics.IndexBuildsTotal.Inc()
		s.metrics.IndexBuildDuration.Observe(time.Since(start).Seconds())
		s.metrics.IndexedDocuments.Set(float64(ix.DocCount()))
		s.metrics.VocabularySize.Set(float64(ix.VocabularySize()))
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("failed to invalidate query cache after rebuild", "error", err)
		}
	}
	s.logger.Info("index rebuilt",
		"documents", ix.DocCount(),
		"vocabulary", ix.VocabularySize(),
		"took", time.Since(start).Round(time.Millisecond),
	)
	return nil
}

// Ready reports whether an index has been built.
func (s *Service) Ready() bool {
	return s.state.Load() != nil
}

// IndexInfo returns document and vocabulary counts of the current index.
func (s *Service) IndexInfo() (docs, vocab int, builtAt time.Time, ok bool) {
	st := s.state.Load()
	if st == nil {
		return 0, 0, time.Time{}, false
	}
	return st.index.DocCount(), st.index.VocabularySize(), st.builtAt, true
}

// Search evaluates a query against the current index, consulting the query
// cache when one is configured. It returns the sorted result ids and
// whether they came from cache.
func (s *Service) Search(ctx context.Context, query string, limit int) (results []string, cacheHit bool, ok bool) {
	st := s.state.Load()
	if st == nil {
		return nil, false, false
	}

	start := time.Now()
	if s.cache != nil {
		results, cacheHit = s.cache.GetOrCompute(ctx, query, limit, func() []string {
			return st.eval.Evaluate(query, limit)
		})
	} else {
		results = st.eval.Evaluate(query, limit)
	}

	if s.metrics != nil {
		operator := boolean.Classify(query).Kind.String()
		cacheStatus := "miss"
		if cacheHit {
			cacheStatus = "hit"
			s.metrics.CacheHitsTotal.Inc()
		} else if s.cache != nil {
			s.metrics.CacheMissesTotal.Inc()
		}
		s.metrics.QueriesTotal.WithLabelValues(operator).Inc()
		s.metrics.QueryLatency.WithLabelValues(cacheStatus).Observe(time.Since(start).Seconds())
		s.metrics.QueryResultsCount.Observe(float64(len(results)))
	}
	return results, cacheHit, true
}

// Verify evaluates the query and cross-checks its own results.
func (s *Service) Verify(ctx context.Context, query string, limit int) (*boolean.Report, []string, bool) {
	st := s.state.Load()
	if st == nil {
		return nil, nil, false
	}
	results := st.eval.Evaluate(query, limit)
	report := st.verifier.Verify(query, results)

	if s.metrics != nil {
		outcome := "consistent"
		if !report.LogicCorrect {
			outcome = "inconsistent"
		}
		s.metrics.VerificationsTotal.WithLabelValues(outcome).Inc()
	}
	return report, results, true
}

// Explain evaluates the query and renders a human-readable explanation.
func (s *Service) Explain(ctx context.Context, query string, limit int) (explanation string, results []string, ok bool) {
	st := s.state.Load()
	if st == nil {
		return "", nil, false
	}
	results = st.eval.Evaluate(query, limit)
	return boolean.Explain(query, results), results, true
}
