package index

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prasetyo-dev/boolsearch/internal/analyzer"
	"github.com/prasetyo-dev/boolsearch/internal/storage"
	"github.com/prasetyo-dev/boolsearch/pkg/errors"
)

// Build reads every document out of the storage engine and constructs the
// inverted index. Failing to enumerate the collection is fatal; per-document
// read failures are logged and the document contributes no terms.
func Build(ctx context.Context, engine storage.Engine, a *analyzer.Analyzer) (*Index, error) {
	logger := slog.Default().With("component", "index-builder")

	ids, err := engine.ListIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listing documents: %v", errors.ErrStorageUnavailable, err)
	}

	ix := NewIndex()
	for _, id := range ids {
		if id == "" {
			logger.Warn("skipping document with empty id")
			continue
		}

		content, err := engine.Content(ctx, id)
		if err != nil {
			// Unreadable documents stay in the store but contribute
			// nothing to the index.
			logger.Warn("failed to read document content, defaulting to empty",
				"doc_id", id,
				"error", err,
			)
			ix.addDocument(id, "", map[string]struct{}{})
			continue
		}

		terms, err := engine.TermSet(ctx, id)
		if err != nil {
			logger.Warn("failed to read document term set",
				"doc_id", id,
				"error", err,
			)
			terms = map[string]struct{}{}
		}

		ix.addDocument(id, a.NormalizedText(content), terms)
	}

	logger.Info("inverted index built",
		"documents", ix.DocCount(),
		"vocabulary", ix.VocabularySize(),
	)
	return ix, nil
}
