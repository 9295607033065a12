// Package kafka wraps segmentio/kafka-go with a JSON producer and a
// commit-after-handle consumer, configured from the shared KafkaConfig.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/prasetyo-dev/boolsearch/pkg/config"
)

// Event is one record to publish: Key selects the partition, Value is
// serialised to JSON.
type Event struct {
	Key   string
	Value any
}

// Producer writes JSON events to one topic with acks from all replicas.
type Producer struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewProducer builds a Producer for topic.
func NewProducer(cfg config.KafkaConfig, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 10 * time.Millisecond,
			RequiredAcks: kafka.RequireAll,
			MaxAttempts:  3,
		},
		logger: slog.Default().With("component", "kafka-producer", "topic", topic),
	}
}

func (p *Producer) encode(events ...Event) ([]kafka.Message, error) {
	msgs := make([]kafka.Message, 0, len(events))
	for _, ev := range events {
		value, err := json.Marshal(ev.Value)
		if err != nil {
			return nil, fmt.Errorf("encoding event %q: %w", ev.Key, err)
		}
		msgs = append(msgs, kafka.Message{Key: []byte(ev.Key), Value: value})
	}
	return msgs, nil
}

// Publish writes a single event synchronously.
func (p *Producer) Publish(ctx context.Context, event Event) error {
	return p.PublishBatch(ctx, []Event{event})
}

// PublishBatch writes events in one call; either all are accepted or the
// whole batch errors.
func (p *Producer) PublishBatch(ctx context.Context, events []Event) error {
	msgs, err := p.encode(events...)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		p.logger.Error("publish failed", "count", len(msgs), "error", err)
		return fmt.Errorf("publishing to kafka: %w", err)
	}
	p.logger.Debug("published", "count", len(msgs))
	return nil
}

// Close flushes and closes the writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
