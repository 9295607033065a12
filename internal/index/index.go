// Package index holds the in-memory inverted index and the builder that
// populates it from the storage engine. The index maps each normalized term
// to the set of document ids containing it, and keeps the normalized
// content of every document for display and verification.
package index

import "sort"

// Index is the term -> document-set mapping plus a document-id -> normalized
// content lookup. It is built once and read-only afterwards, so concurrent
// query evaluation needs no locking.
type Index struct {
	inverted map[string]DocSet
	docs     map[string]string
}

// NewIndex creates an empty Index.
func NewIndex() *Index {
	return &Index{
		inverted: make(map[string]DocSet),
		docs:     make(map[string]string),
	}
}

// addDocument records the normalized content of a document and inserts its
// id under every term of its term set.
func (ix *Index) addDocument(id string, normalized string, terms map[string]struct{}) {
	ix.docs[id] = normalized
	for term := range terms {
		set, ok := ix.inverted[term]
		if !ok {
			set = make(DocSet)
			ix.inverted[term] = set
		}
		set[id] = struct{}{}
	}
}

// Postings returns the document set for term, or an empty set when the term
// is absent from the vocabulary. The returned set must not be mutated.
func (ix *Index) Postings(term string) DocSet {
	if set, ok := ix.inverted[term]; ok {
		return set
	}
	return DocSet{}
}

// HasTerm reports whether term occurs in the vocabulary.
func (ix *Index) HasTerm(term string) bool {
	_, ok := ix.inverted[term]
	return ok
}

// NormalizedContent returns the stored normalized content of a document and
// whether the document is known to the index.
func (ix *Index) NormalizedContent(id string) (string, bool) {
	content, ok := ix.docs[id]
	return content, ok
}

// DocCount returns the number of indexed documents.
func (ix *Index) DocCount() int {
	return len(ix.docs)
}

// VocabularySize returns the number of distinct terms.
func (ix *Index) VocabularySize() int {
	return len(ix.inverted)
}

// Terms returns the vocabulary in ascending order.
func (ix *Index) Terms() []string {
	terms := make([]string, 0, len(ix.inverted))
	for term := range ix.inverted {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// DocIDs returns every indexed document id in ascending order.
func (ix *Index) DocIDs() []string {
	ids := make([]string, 0, len(ix.docs))
	for id := range ix.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
