// Package benchmark contains Go benchmarks for the analyzer, index builder,
// and Boolean evaluator, measuring throughput and allocation behaviour.
package benchmark

import (
	"context"
	"fmt"
	"testing"

	"github.com/prasetyo-dev/boolsearch/internal/analyzer"
	"github.com/prasetyo-dev/boolsearch/internal/index"
	"github.com/prasetyo-dev/boolsearch/internal/storage"
)

var docTemplates = []string{
	"the quick brown dog jumps over the lazy cat",
	"information retrieval with inverted indexes and posting lists",
	"stemming collapses running runs and ran into one root",
	"stop words carry no discriminating power for retrieval",
	"boolean conjunction intersects the posting lists of its operands",
	"dogs and cats play together in the sunny park",
}

// seededEngine stores n synthetic documents cycling through docTemplates.
func seededEngine(b *testing.B, a *analyzer.Analyzer, n int) *storage.MemoryEngine {
	b.Helper()
	engine := storage.NewMemoryEngine(a)
	docs := make([]storage.Document, n)
	for i := 0; i < n; i++ {
		docs[i] = storage.Document{
			ID:       fmt.Sprintf("doc-%06d", i),
			Contents: docTemplates[i%len(docTemplates)],
		}
	}
	if err := engine.Store(context.Background(), docs); err != nil {
		b.Fatal(err)
	}
	return engine
}

// BenchmarkIndexBuild measures full index construction at various corpus
// sizes.
func BenchmarkIndexBuild(b *testing.B) {
	sizes := []int{100, 1000, 10000}
	for _, n := range sizes {
		b.Run(fmt.Sprintf("docs_%d", n), func(b *testing.B) {
			a := analyzer.New()
			engine := seededEngine(b, a, n)

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ix, err := index.Build(context.Background(), engine, a)
				if err != nil {
					b.Fatal(err)
				}
				_ = ix
			}
		})
	}
}

// BenchmarkPostingsLookup measures single-term posting retrieval over 10 000
// documents.
func BenchmarkPostingsLookup(b *testing.B) {
	a := analyzer.New()
	engine := seededEngine(b, a, 10000)
	ix, err := index.Build(context.Background(), engine, a)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		set := ix.Postings("dog")
		_ = set
	}
}

// BenchmarkDocSetOps measures the raw set algebra at various set sizes.
func BenchmarkDocSetOps(b *testing.B) {
	sizes := []int{100, 1000, 10000}
	for _, n := range sizes {
		left := make(index.DocSet, n)
		right := make(index.DocSet, n)
		for i := 0; i < n; i++ {
			left[fmt.Sprintf("doc-%06d", i)] = struct{}{}
			right[fmt.Sprintf("doc-%06d", i+n/2)] = struct{}{}
		}

		b.Run(fmt.Sprintf("union_%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = left.Union(right)
			}
		})
		b.Run(fmt.Sprintf("intersect_%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = left.Intersect(right)
			}
		})
		b.Run(fmt.Sprintf("difference_%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = left.Difference(right)
			}
		})
	}
}
