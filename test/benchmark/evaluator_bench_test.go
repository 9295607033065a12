package benchmark

import (
	"context"
	"fmt"
	"testing"

	"github.com/prasetyo-dev/boolsearch/internal/analyzer"
	"github.com/prasetyo-dev/boolsearch/internal/boolean"
	"github.com/prasetyo-dev/boolsearch/internal/index"
)

func benchEvaluator(b *testing.B, n int) *boolean.Evaluator {
	b.Helper()
	a := analyzer.New()
	engine := seededEngine(b, a, n)
	ix, err := index.Build(context.Background(), engine, a)
	if err != nil {
		b.Fatal(err)
	}
	return boolean.NewEvaluator(ix, a)
}

// BenchmarkClassify measures query classification latency for each operator
// family.
func BenchmarkClassify(b *testing.B) {
	queries := []struct {
		name  string
		query string
	}{
		{"single", "retrieval"},
		{"and", "dog AND cat AND park"},
		{"or", "dog OR cat OR retrieval"},
		{"and_not", "dog AND cat AND NOT park"},
		{"not", "dog NOT cat"},
	}
	for _, q := range queries {
		b.Run(q.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				parsed := boolean.Classify(q.query)
				_ = parsed
			}
		})
	}
}

// BenchmarkEvaluate measures end-to-end query evaluation over 10 000
// documents for each operator family.
func BenchmarkEvaluate(b *testing.B) {
	eval := benchEvaluator(b, 10000)

	queries := []struct {
		name  string
		query string
	}{
		{"single", "dog"},
		{"and", "dog AND cat"},
		{"or", "dog OR retrieval"},
		{"and_not", "dog AND NOT park"},
		{"not", "dog NOT cat"},
	}
	for _, q := range queries {
		b.Run(q.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				results := eval.Evaluate(q.query, 0)
				_ = results
			}
		})
	}
}

// BenchmarkEvaluateParallel measures concurrent query throughput against a
// shared read-only index.
func BenchmarkEvaluateParallel(b *testing.B) {
	eval := benchEvaluator(b, 10000)
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			results := eval.Evaluate("dog AND NOT cat", 0)
			_ = results
		}
	})
}

// BenchmarkVerify measures verification cost at varying result-list sizes.
func BenchmarkVerify(b *testing.B) {
	eval := benchEvaluator(b, 10000)
	verifier := boolean.NewVerifier(eval)

	limits := []int{10, 100, 1000}
	for _, limit := range limits {
		results := eval.Evaluate("dog OR cat", limit)
		b.Run(fmt.Sprintf("results_%d", len(results)), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				report := verifier.Verify("dog OR cat", results)
				_ = report
			}
		})
	}
}
