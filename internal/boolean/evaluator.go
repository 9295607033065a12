package boolean

import (
	"log/slog"

	"github.com/prasetyo-dev/boolsearch/internal/analyzer"
	"github.com/prasetyo-dev/boolsearch/internal/index"
)

// DefaultMaxResults caps a result list when the caller does not supply a
// limit of its own.
const DefaultMaxResults = 100

// Evaluator answers Boolean queries against a built inverted index. It is
// read-only over the index and safe for concurrent use.
type Evaluator struct {
	index    *index.Index
	analyzer *analyzer.Analyzer
	logger   *slog.Logger
}

// NewEvaluator creates an Evaluator over the given index. The analyzer must
// be the same one used while building the index.
func NewEvaluator(ix *index.Index, a *analyzer.Analyzer) *Evaluator {
	return &Evaluator{
		index:    ix,
		analyzer: a,
		logger:   slog.Default().With("component", "boolean-evaluator"),
	}
}

// Evaluate runs the query and returns matching document ids in ascending
// order, truncated to limit (DefaultMaxResults when limit <= 0). Bad input
// never produces an error: blank, malformed, and unknown-term queries all
// evaluate to an empty list.
func (e *Evaluator) Evaluate(query string, limit int) []string {
	if limit <= 0 {
		limit = DefaultMaxResults
	}

	q := Classify(query)
	result := e.resolve(q)

	ids := result.SortedIDs()
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids
}

// resolve applies the operator semantics for a classified query.
func (e *Evaluator) resolve(q Query) index.DocSet {
	switch q.Kind {
	case KindAndNot:
		return e.evalAndNot(q.Parts[0], q.Parts[1])
	case KindAnd:
		return e.evalAnd(q.Parts)
	case KindOr:
		return e.evalOr(q.Parts)
	case KindNot:
		return e.termsFor(q.Parts[0]).Difference(e.termsFor(q.Parts[1]))
	case KindMalformed:
		e.logger.Warn("malformed boolean query, returning empty result", "query", q.Raw)
		return index.DocSet{}
	default:
		if len(q.Parts) == 0 {
			return index.DocSet{}
		}
		return e.termsFor(q.Parts[0])
	}
}

func (e *Evaluator) evalAnd(parts []string) index.DocSet {
	if len(parts) == 0 {
		return index.DocSet{}
	}
	result := e.termsFor(parts[0])
	for _, part := range parts[1:] {
		result = result.Intersect(e.termsFor(part))
	}
	return result
}

func (e *Evaluator) evalOr(parts []string) index.DocSet {
	result := index.DocSet{}
	for _, part := range parts {
		result = result.Union(e.termsFor(part))
	}
	return result
}

// evalAndNot resolves the left side as an AND group when it contains
// " and " (supporting "a and b and not c") and subtracts the right side.
func (e *Evaluator) evalAndNot(left, right string) index.DocSet {
	return e.evalAnd(AndParts(left)).Difference(e.termsFor(right))
}

// termsFor resolves one term group to a document set: the group text is
// normalized with the indexing pipeline, and the posting sets of every
// resulting token are unioned. Tokens absent from the vocabulary contribute
// nothing; a group normalizing to zero tokens resolves to the empty set.
func (e *Evaluator) termsFor(group string) index.DocSet {
	result := index.DocSet{}
	for _, token := range e.analyzer.Analyze(group) {
		result = result.Union(e.index.Postings(token))
	}
	return result
}
