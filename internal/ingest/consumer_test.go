package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/prasetyo-dev/boolsearch/internal/analyzer"
	"github.com/prasetyo-dev/boolsearch/internal/storage"
)

func encodeEvent(t *testing.T, event DocumentEvent) []byte {
	t.Helper()
	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshaling event: %v", err)
	}
	return data
}

func TestHandleDocumentEventStoresDocument(t *testing.T) {
	engine := storage.NewMemoryEngine(analyzer.New())
	notified := 0
	handler := HandleDocumentEvent(engine, func(stored int) { notified += stored })

	value := encodeEvent(t, DocumentEvent{
		ID:         "d1",
		Contents:   "the quick brown dog",
		IngestedAt: time.Now().UTC(),
	})
	if err := handler(context.Background(), []byte("d1"), value); err != nil {
		t.Fatalf("handler: %v", err)
	}

	content, err := engine.Content(context.Background(), "d1")
	if err != nil {
		t.Fatalf("Content: %v", err)
	}
	if content != "the quick brown dog" {
		t.Errorf("stored content = %q", content)
	}
	if notified != 1 {
		t.Errorf("notified = %d, want 1", notified)
	}
}

func TestHandleDocumentEventSkipsBadEvents(t *testing.T) {
	engine := storage.NewMemoryEngine(analyzer.New())
	notified := 0
	handler := HandleDocumentEvent(engine, func(stored int) { notified += stored })

	bad := [][]byte{
		[]byte("not json"),
		encodeEvent(t, DocumentEvent{ID: "", Contents: "no id"}),
		encodeEvent(t, DocumentEvent{ID: "d1", Contents: ""}),
	}
	for _, value := range bad {
		// Skips must not error; an error would stall the consume loop.
		if err := handler(context.Background(), nil, value); err != nil {
			t.Errorf("handler(%q) = %v, want nil", value, err)
		}
	}

	count, _ := engine.Count(context.Background())
	if count != 0 {
		t.Errorf("Count = %d, want 0", count)
	}
	if notified != 0 {
		t.Errorf("notified = %d, want 0", notified)
	}
}

// failingEngine rejects every store.
type failingEngine struct {
	storage.Engine
}

func (f *failingEngine) Store(ctx context.Context, docs []storage.Document) error {
	return errors.New("disk full")
}

func TestHandleDocumentEventPropagatesStoreError(t *testing.T) {
	engine := &failingEngine{Engine: storage.NewMemoryEngine(analyzer.New())}
	handler := HandleDocumentEvent(engine, nil)

	value := encodeEvent(t, DocumentEvent{ID: "d1", Contents: "dog"})
	if err := handler(context.Background(), nil, value); err == nil {
		t.Error("expected store failure to propagate")
	}
}
