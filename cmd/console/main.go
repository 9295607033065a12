// Command console loads a JSONL corpus into an in-memory engine, builds
// the inverted index, runs a set of demonstration queries with verification,
// and then drops into an interactive Boolean query loop.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/prasetyo-dev/boolsearch/internal/analyzer"
	"github.com/prasetyo-dev/boolsearch/internal/boolean"
	"github.com/prasetyo-dev/boolsearch/internal/corpus"
	"github.com/prasetyo-dev/boolsearch/internal/index"
	"github.com/prasetyo-dev/boolsearch/internal/storage"
	"github.com/prasetyo-dev/boolsearch/pkg/logger"
)

var demoQueries = []string{
	"dog AND cat",
	"dog OR cat",
	"dog AND NOT cat",
	"dog OR short",
	"rank OR night",
}

func main() {
	corpusPath := flag.String("corpus", "data/documents.jsonl", "path to JSONL document collection")
	limit := flag.Int("limit", boolean.DefaultMaxResults, "maximum results per query")
	logLevel := flag.String("log-level", "warn", "log level (debug, info, warn, error)")
	flag.Parse()

	logger.Setup(*logLevel, "text")
	ctx := context.Background()

	docs, skipped, err := corpus.LoadFile(*corpusPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load corpus: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d documents from %s (%d skipped)\n", len(docs), *corpusPath, skipped)

	a := analyzer.New()
	engine := storage.NewMemoryEngine(a)
	if err := engine.Store(ctx, docs); err != nil {
		fmt.Fprintf(os.Stderr, "failed to store documents: %v\n", err)
		os.Exit(1)
	}

	ix, err := index.Build(ctx, engine, a)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build index: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Inverted index built: %d documents, %d unique terms\n\n",
		ix.DocCount(), ix.VocabularySize())

	eval := boolean.NewEvaluator(ix, a)
	verifier := boolean.NewVerifier(eval)

	runDemoQueries(eval, verifier, *limit)
	interactiveLoop(eval, verifier, *limit)
}

func runDemoQueries(eval *boolean.Evaluator, verifier *boolean.Verifier, limit int) {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("DEMONSTRATION QUERIES")
	fmt.Println(strings.Repeat("=", 60))

	passed := 0
	for i, query := range demoQueries {
		fmt.Printf("\nQuery %d: %s\n", i+1, query)
		fmt.Println(strings.Repeat("-", 40))

		results := eval.Evaluate(query, limit)
		report := verifier.Verify(query, results)

		fmt.Printf("Matches (%d): %v\n", len(results), results)
		if report.LogicCorrect {
			fmt.Println("Verification: PASSED")
			passed++
		} else {
			fmt.Println("Verification: FAILED")
			for _, issue := range report.Issues {
				fmt.Printf("  - %s\n", issue)
			}
		}
		fmt.Println(boolean.Explain(query, results))
	}

	fmt.Printf("\n%d/%d demonstration queries verified\n\n", passed, len(demoQueries))
}

func interactiveLoop(eval *boolean.Evaluator, verifier *boolean.Verifier, limit int) {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("INTERACTIVE QUERY MODE")
	fmt.Println("Operators: AND, OR, NOT, AND NOT. Type 'quit' to exit.")
	fmt.Println(strings.Repeat("=", 60))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nquery> ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(query) {
		case "":
			continue
		case "quit", "exit", "q":
			return
		}

		results := eval.Evaluate(query, limit)
		if len(results) == 0 {
			fmt.Println("No matches found")
			continue
		}
		fmt.Printf("Matches (%d): %v\n", len(results), results)

		report := verifier.Verify(query, results)
		if !report.LogicCorrect {
			fmt.Println("WARNING: verification failed")
			for _, issue := range report.Issues {
				fmt.Printf("  - %s\n", issue)
			}
		}
	}
}
