// Package storage defines the narrow read/write interface the retrieval
// core consumes from the underlying document store, along with an in-memory
// implementation and a PostgreSQL-backed one.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a document id is absent from the engine.
var ErrNotFound = errors.New("document not found")

// Document is a single corpus record as supplied by the document source.
type Document struct {
	ID       string `json:"id"`
	Contents string `json:"contents"`
}

// Engine is the storage/index engine the Boolean core depends on. The core
// only ever reads stored content and per-document term vectors; writes
// happen once, during ingestion.
type Engine interface {
	// Store persists a batch of documents, replacing any existing entries
	// with the same id.
	Store(ctx context.Context, docs []Document) error

	// Content returns the stored (raw) content of a document.
	Content(ctx context.Context, id string) (string, error)

	// TermSet returns the distinct normalized terms occurring in the
	// document, as recorded at store time.
	TermSet(ctx context.Context, id string) (map[string]struct{}, error)

	// Count returns the number of stored documents.
	Count(ctx context.Context) (int, error)

	// ListIDs returns every stored document id in ascending order.
	ListIDs(ctx context.Context) ([]string, error)

	// Close releases any resources held by the engine.
	Close() error
}
