// Package ingest moves documents into the storage engine. Documents arrive
// either from a JSONL corpus file or as DocumentEvent messages on a Kafka
// topic; in both cases the inverted index must be rebuilt afterwards, since
// the index has no incremental update path.
package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/prasetyo-dev/boolsearch/internal/storage"
	"github.com/prasetyo-dev/boolsearch/pkg/kafka"
)

// DocumentEvent is the Kafka message payload carrying one corpus document.
type DocumentEvent struct {
	ID         string    `json:"id"`
	Contents   string    `json:"contents"`
	IngestedAt time.Time `json:"ingested_at"`
}

// Notifier is called after documents land in the engine, so the owner can
// schedule an index rebuild.
type Notifier func(stored int)

// HandleDocumentEvent returns a Kafka MessageHandler that validates and
// stores each incoming document. Malformed events are logged and skipped;
// they never stop the consume loop.
func HandleDocumentEvent(engine storage.Engine, notify Notifier) kafka.MessageHandler {
	logger := slog.Default().With("component", "document-consumer")
	return func(ctx context.Context, key []byte, value []byte) error {
		event, err := kafka.DecodeJSON[DocumentEvent](value)
		if err != nil {
			logger.Warn("skipping undecodable document event", "key", string(key), "error", err)
			return nil
		}
		if event.ID == "" || event.Contents == "" {
			logger.Warn("skipping document event with missing id or contents", "key", string(key))
			return nil
		}

		doc := storage.Document{ID: event.ID, Contents: event.Contents}
		if err := engine.Store(ctx, []storage.Document{doc}); err != nil {
			return err
		}
		logger.Info("document stored", "doc_id", event.ID)
		if notify != nil {
			notify(1)
		}
		return nil
	}
}
