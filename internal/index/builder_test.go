package index

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/prasetyo-dev/boolsearch/internal/analyzer"
	"github.com/prasetyo-dev/boolsearch/internal/storage"
	apperrors "github.com/prasetyo-dev/boolsearch/pkg/errors"
)

func seedEngine(t *testing.T, a *analyzer.Analyzer, docs map[string]string) *storage.MemoryEngine {
	t.Helper()
	engine := storage.NewMemoryEngine(a)
	batch := make([]storage.Document, 0, len(docs))
	for id, contents := range docs {
		batch = append(batch, storage.Document{ID: id, Contents: contents})
	}
	if err := engine.Store(context.Background(), batch); err != nil {
		t.Fatalf("storing documents: %v", err)
	}
	return engine
}

func TestBuildIndexesEveryStoredDocument(t *testing.T) {
	a := analyzer.New()
	engine := seedEngine(t, a, map[string]string{
		"d1": "The quick brown dog",
		"d2": "the lazy cat",
	})

	ix, err := Build(context.Background(), engine, a)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if ix.DocCount() != 2 {
		t.Errorf("DocCount = %d, want 2", ix.DocCount())
	}
	if got := ix.DocIDs(); !reflect.DeepEqual(got, []string{"d1", "d2"}) {
		t.Errorf("DocIDs = %v", got)
	}
	if got := ix.Postings("dog").SortedIDs(); !reflect.DeepEqual(got, []string{"d1"}) {
		t.Errorf("Postings(dog) = %v, want [d1]", got)
	}
	// Stopwords never reach the vocabulary.
	if ix.HasTerm("the") {
		t.Error("stopword indexed")
	}
	if content, ok := ix.NormalizedContent("d1"); !ok || content != "quick brown dog" {
		t.Errorf("NormalizedContent(d1) = %q, %v", content, ok)
	}
}

func TestBuildPostingMatchesTermSet(t *testing.T) {
	// Every stored term appears in the document's term set and vice versa:
	// posting lists and term sets are two views of the same relation.
	a := analyzer.New()
	engine := seedEngine(t, a, map[string]string{
		"d1": "dogs running in the park",
		"d2": "a cat sleeping",
		"d3": "dog and cat play",
	})

	ix, err := Build(context.Background(), engine, a)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for _, id := range ix.DocIDs() {
		terms, err := engine.TermSet(context.Background(), id)
		if err != nil {
			t.Fatalf("TermSet(%s): %v", id, err)
		}
		for term := range terms {
			if !ix.Postings(term).Contains(id) {
				t.Errorf("term %q of %s missing from its posting list", term, id)
			}
		}
	}
	for _, term := range ix.Terms() {
		for id := range ix.Postings(term) {
			terms, err := engine.TermSet(context.Background(), id)
			if err != nil {
				t.Fatalf("TermSet(%s): %v", id, err)
			}
			if _, ok := terms[term]; !ok {
				t.Errorf("posting %s under %q has no such term in its set", id, term)
			}
		}
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	a := analyzer.New()
	engine := seedEngine(t, a, map[string]string{
		"d1": "dog cat",
		"d2": "dog bird",
	})

	first, err := Build(context.Background(), engine, a)
	if err != nil {
		t.Fatalf("first Build: %v", err)
	}
	second, err := Build(context.Background(), engine, a)
	if err != nil {
		t.Fatalf("second Build: %v", err)
	}

	if !reflect.DeepEqual(first.Terms(), second.Terms()) {
		t.Errorf("vocabularies differ: %v vs %v", first.Terms(), second.Terms())
	}
	for _, term := range first.Terms() {
		a, b := first.Postings(term).SortedIDs(), second.Postings(term).SortedIDs()
		if !reflect.DeepEqual(a, b) {
			t.Errorf("postings for %q differ: %v vs %v", term, a, b)
		}
	}
}

// flakyEngine wraps a storage engine and fails reads for selected documents.
type flakyEngine struct {
	storage.Engine
	failContent map[string]bool
	failList    bool
}

func (f *flakyEngine) ListIDs(ctx context.Context) ([]string, error) {
	if f.failList {
		return nil, errors.New("connection refused")
	}
	return f.Engine.ListIDs(ctx)
}

func (f *flakyEngine) Content(ctx context.Context, id string) (string, error) {
	if f.failContent[id] {
		return "", errors.New("read timeout")
	}
	return f.Engine.Content(ctx, id)
}

func TestBuildListFailureIsFatal(t *testing.T) {
	a := analyzer.New()
	engine := &flakyEngine{Engine: seedEngine(t, a, nil), failList: true}

	_, err := Build(context.Background(), engine, a)
	if !errors.Is(err, apperrors.ErrStorageUnavailable) {
		t.Errorf("Build error = %v, want ErrStorageUnavailable", err)
	}
}

func TestBuildUnreadableDocumentContributesNoTerms(t *testing.T) {
	a := analyzer.New()
	engine := &flakyEngine{
		Engine:      seedEngine(t, a, map[string]string{"d1": "dog cat", "d2": "dog bird"}),
		failContent: map[string]bool{"d2": true},
	}

	ix, err := Build(context.Background(), engine, a)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// d2 is still a known document with empty content, but appears in no
	// posting list.
	if ix.DocCount() != 2 {
		t.Errorf("DocCount = %d, want 2", ix.DocCount())
	}
	if content, ok := ix.NormalizedContent("d2"); !ok || content != "" {
		t.Errorf("NormalizedContent(d2) = %q, %v, want empty", content, ok)
	}
	for _, term := range ix.Terms() {
		if ix.Postings(term).Contains("d2") {
			t.Errorf("unreadable document indexed under %q", term)
		}
	}
}

func TestBuildEmptyStore(t *testing.T) {
	a := analyzer.New()
	ix, err := Build(context.Background(), seedEngine(t, a, nil), a)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if ix.DocCount() != 0 || ix.VocabularySize() != 0 {
		t.Errorf("empty store built %d docs, %d terms", ix.DocCount(), ix.VocabularySize())
	}
}
