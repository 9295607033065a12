package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/prasetyo-dev/boolsearch/internal/analyzer"
)

type memoryDoc struct {
	contents string
	terms    map[string]struct{}
}

// MemoryEngine is an in-memory Engine. The term vector of each document is
// computed with the shared Analyzer at store time, so TermSet and a fresh
// analysis of the stored content always agree.
type MemoryEngine struct {
	mu       sync.RWMutex
	docs     map[string]memoryDoc
	analyzer *analyzer.Analyzer
}

// NewMemoryEngine creates an empty in-memory engine using the given
// analyzer for term extraction.
func NewMemoryEngine(a *analyzer.Analyzer) *MemoryEngine {
	return &MemoryEngine{
		docs:     make(map[string]memoryDoc),
		analyzer: a,
	}
}

func (m *MemoryEngine) Store(ctx context.Context, docs []Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, doc := range docs {
		m.docs[doc.ID] = memoryDoc{
			contents: doc.Contents,
			terms:    m.analyzer.TermSet(doc.Contents),
		}
	}
	return nil
}

func (m *MemoryEngine) Content(ctx context.Context, id string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.docs[id]
	if !ok {
		return "", ErrNotFound
	}
	return doc.contents, nil
}

func (m *MemoryEngine) TermSet(ctx context.Context, id string) (map[string]struct{}, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	terms := make(map[string]struct{}, len(doc.terms))
	for t := range doc.terms {
		terms[t] = struct{}{}
	}
	return terms, nil
}

func (m *MemoryEngine) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs), nil
}

func (m *MemoryEngine) ListIDs(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.docs))
	for id := range m.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (m *MemoryEngine) Close() error {
	return nil
}
