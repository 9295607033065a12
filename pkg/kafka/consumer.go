package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/prasetyo-dev/boolsearch/pkg/config"
)

// MessageHandler processes one message. Returning nil commits the offset;
// returning an error leaves the message uncommitted so it is redelivered.
type MessageHandler func(ctx context.Context, key []byte, value []byte) error

// Consumer runs a fetch/handle/commit loop over a single topic within a
// consumer group.
type Consumer struct {
	reader  *kafka.Reader
	handler MessageHandler
	logger  *slog.Logger
}

// NewConsumer builds a Consumer for topic. Consumption starts at the latest
// offset for a fresh group.
func NewConsumer(cfg config.KafkaConfig, topic string, handler MessageHandler) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:     cfg.Brokers,
			GroupID:     cfg.ConsumerGroup,
			Topic:       topic,
			MinBytes:    1,
			MaxBytes:    10 << 20,
			MaxWait:     500 * time.Millisecond,
			StartOffset: kafka.LastOffset,
		}),
		handler: handler,
		logger:  slog.Default().With("component", "kafka-consumer", "topic", topic),
	}
}

// Start consumes until ctx is cancelled. A handler error leaves the offset
// uncommitted and moves on; fetch errors other than cancellation are logged
// and retried after a short pause.
func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info("consumer loop starting")
	defer c.reader.Close()

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				c.logger.Info("consumer loop stopped")
				return nil
			}
			c.logger.Error("fetch failed", "error", err)
			select {
			case <-time.After(time.Second):
				continue
			case <-ctx.Done():
				return nil
			}
		}

		if err := c.handler(ctx, msg.Key, msg.Value); err != nil {
			c.logger.Error("message handling failed, offset left uncommitted",
				"partition", msg.Partition,
				"offset", msg.Offset,
				"error", err,
			)
			continue
		}
		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Error("offset commit failed",
				"partition", msg.Partition,
				"offset", msg.Offset,
				"error", err,
			)
		}
	}
}

// Close stops the underlying reader; safe to call while Start is running.
func (c *Consumer) Close() error {
	return c.reader.Close()
}

// DecodeJSON unmarshals a message value into T.
func DecodeJSON[T any](value []byte) (T, error) {
	var out T
	if err := json.Unmarshal(value, &out); err != nil {
		return out, fmt.Errorf("decoding kafka message: %w", err)
	}
	return out, nil
}
