// Command feeder reads a JSONL document collection and publishes each
// record to the Kafka document-ingest topic for the server to store and
// index.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/prasetyo-dev/boolsearch/internal/corpus"
	"github.com/prasetyo-dev/boolsearch/internal/ingest"
	"github.com/prasetyo-dev/boolsearch/pkg/config"
	"github.com/prasetyo-dev/boolsearch/pkg/kafka"
	"github.com/prasetyo-dev/boolsearch/pkg/logger"
)

const batchSize = 100

func main() {
	configPath := flag.String("config", "configs/development.yaml", "path to config file")
	corpusPath := flag.String("corpus", "data/documents.jsonl", "path to JSONL document collection")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger.Setup(cfg.Logging.Level, "text")

	docs, skipped, err := corpus.LoadFile(*corpusPath)
	if err != nil {
		slog.Error("failed to load corpus", "path", *corpusPath, "error", err)
		os.Exit(1)
	}
	slog.Info("corpus loaded", "documents", len(docs), "skipped", skipped)

	producer := kafka.NewProducer(cfg.Kafka, cfg.Kafka.Topics.DocumentIngest)
	defer producer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	published := 0
	for start := 0; start < len(docs); start += batchSize {
		end := start + batchSize
		if end > len(docs) {
			end = len(docs)
		}
		events := make([]kafka.Event, 0, end-start)
		for _, doc := range docs[start:end] {
			events = append(events, kafka.Event{
				Key: doc.ID,
				Value: ingest.DocumentEvent{
					ID:         doc.ID,
					Contents:   doc.Contents,
					IngestedAt: time.Now().UTC(),
				},
			})
		}
		if err := producer.PublishBatch(ctx, events); err != nil {
			slog.Error("failed to publish batch", "error", err)
			os.Exit(1)
		}
		published += len(events)
	}
	slog.Info("feed complete", "published", published, "topic", cfg.Kafka.Topics.DocumentIngest)
}
