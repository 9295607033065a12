// Package analyzer implements the text normalization pipeline shared by
// indexing and querying: lowercase, punctuation removal, whitespace
// collapsing, stopword filtering, and Porter stemming. The same Analyzer
// instance must process documents and query terms, otherwise retrieval
// breaks silently.
package analyzer

import (
	"strings"

	"github.com/kljensen/snowball/english"
)

// Analyzer turns raw text into a sequence of normalized index terms.
type Analyzer struct {
	stopwords map[string]struct{}
}

// New creates an Analyzer with the default English stopword set.
func New() *Analyzer {
	return &Analyzer{stopwords: DefaultStopwords()}
}

// NewWithStopwords creates an Analyzer with a caller-supplied stopword set.
// A nil set falls back to the default list.
func NewWithStopwords(stopwords map[string]struct{}) *Analyzer {
	if stopwords == nil {
		stopwords = DefaultStopwords()
	}
	return &Analyzer{stopwords: stopwords}
}

// Analyze applies the full pipeline in order: lowercase, strip ASCII
// punctuation (removed outright, so "don't" becomes "dont"), collapse
// whitespace, split, drop stopwords, stem. Empty input yields an empty
// slice.
func (a *Analyzer) Analyze(text string) []string {
	text = strings.ToLower(text)
	text = stripPunctuation(text)

	words := strings.Fields(text)
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if _, isStop := a.stopwords[word]; isStop {
			continue
		}
		stemmed := english.Stem(word, true)
		if stemmed == "" {
			continue
		}
		tokens = append(tokens, stemmed)
	}
	return tokens
}

// NormalizedText returns the analyzed tokens joined by single spaces. This
// is the form stored per document for display and verification.
func (a *Analyzer) NormalizedText(text string) string {
	return strings.Join(a.Analyze(text), " ")
}

// TermSet returns the distinct analyzed tokens of text.
func (a *Analyzer) TermSet(text string) map[string]struct{} {
	tokens := a.Analyze(text)
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

// stripPunctuation deletes every ASCII punctuation rune. Characters are
// removed, not replaced with spaces, matching the indexing contract.
func stripPunctuation(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if isASCIIPunct(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isASCIIPunct(r rune) bool {
	switch {
	case r >= '!' && r <= '/':
		return true
	case r >= ':' && r <= '@':
		return true
	case r >= '[' && r <= '`':
		return true
	case r >= '{' && r <= '~':
		return true
	}
	return false
}
