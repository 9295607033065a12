package benchmark

import (
	"fmt"
	"strings"
	"testing"

	"github.com/prasetyo-dev/boolsearch/internal/analyzer"
)

var sampleTexts = map[string]string{
	"short": "The quick brown dog jumps over the lazy cat!",
	"medium": `Boolean retrieval answers queries by pure set membership: a document
        either contains a term or it does not, and conjunction, disjunction, and
        exclusion combine posting lists without any notion of relevance. The
        normalization pipeline lowercases the text, strips punctuation, drops stop
        words, and stems every surviving token, so queries and documents always
        meet in the same reduced vocabulary.`,
	"long": strings.Repeat(`Inverted indexes map each normalized term to the set of
        documents containing it. Stemming collapses inflected forms such as running,
        runs, and ran into a shared root, which keeps the vocabulary small and makes
        exact-match retrieval tolerant of morphology. Stop word removal discards the
        highest-frequency function words that carry no discriminating power. `, 20),
}

func BenchmarkAnalyze(b *testing.B) {
	a := analyzer.New()
	for name, text := range sampleTexts {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				tokens := a.Analyze(text)
				_ = tokens
			}
		})
	}
}

func BenchmarkAnalyzeParallel(b *testing.B) {
	a := analyzer.New()
	text := sampleTexts["medium"]
	b.ReportAllocs()
	b.SetBytes(int64(len(text)))
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			tokens := a.Analyze(text)
			_ = tokens
		}
	})
}

func BenchmarkTermSet(b *testing.B) {
	a := analyzer.New()
	text := sampleTexts["medium"]
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		terms := a.TermSet(text)
		_ = terms
	}
}

func BenchmarkAnalyzeVaryingSize(b *testing.B) {
	a := analyzer.New()
	sizes := []int{10, 100, 500, 1000, 5000}
	baseWord := "boolean retrieval indexing normalization stemming "
	for _, size := range sizes {
		text := strings.Repeat(baseWord, size/len(baseWord)+1)[:size]
		b.Run(fmt.Sprintf("bytes_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				tokens := a.Analyze(text)
				_ = tokens
			}
		})
	}
}
