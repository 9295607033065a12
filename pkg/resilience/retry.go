// Package resilience offers a jittered exponential-backoff retry used for
// dependency connections at startup.
package resilience

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"
)

// RetryConfig tunes the backoff schedule; zero values take defaults.
type RetryConfig struct {
	MaxAttempts    int
	InitialDelay   time.Duration
	MaxDelay       time.Duration
	Multiplier     float64
	JitterFraction float64
}

func (c *RetryConfig) applyDefaults() {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 3
	}
	if c.InitialDelay <= 0 {
		c.InitialDelay = 100 * time.Millisecond
	}
	if c.MaxDelay <= 0 {
		c.MaxDelay = 10 * time.Second
	}
	if c.Multiplier <= 0 {
		c.Multiplier = 2.0
	}
	if c.JitterFraction <= 0 {
		c.JitterFraction = 0.1
	}
}

// Retry runs fn until it succeeds, attempts are exhausted, or ctx is
// cancelled. The delay doubles (by Multiplier) each attempt with random
// jitter, capped at MaxDelay.
func Retry(ctx context.Context, name string, cfg RetryConfig, fn func() error) error {
	cfg.applyDefaults()
	log := slog.Default().With("component", "retry", "operation", name)

	delay := cfg.InitialDelay
	var lastErr error
	for attempt := 1; ; attempt++ {
		if lastErr = fn(); lastErr == nil {
			if attempt > 1 {
				log.Info("succeeded after retries", "attempts", attempt)
			}
			return nil
		}
		if attempt >= cfg.MaxAttempts {
			return fmt.Errorf("%s failed after %d attempts: %w", name, attempt, lastErr)
		}

		wait := jitter(delay, cfg.JitterFraction)
		log.Warn("attempt failed, backing off",
			"attempt", attempt,
			"max_attempts", cfg.MaxAttempts,
			"wait", wait,
			"error", lastErr,
		)
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return fmt.Errorf("%s retry cancelled: %w", name, ctx.Err())
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}
}

// jitter spreads d by ±fraction to avoid synchronized reconnect storms.
func jitter(d time.Duration, fraction float64) time.Duration {
	offset := (2*rand.Float64() - 1) * fraction * float64(d)
	return d + time.Duration(offset)
}
