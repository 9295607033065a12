// Package cache is a Redis-backed query-result cache. Keys are derived from
// the classified query so that logically identical queries ("a AND b" and
// "b AND a") share an entry. The cache is read-through with singleflight
// collapsing of concurrent identical misses.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/prasetyo-dev/boolsearch/internal/boolean"
	"github.com/prasetyo-dev/boolsearch/pkg/config"
	pkgredis "github.com/prasetyo-dev/boolsearch/pkg/redis"
)

const keyPrefix = "boolsearch:"

// QueryCache caches evaluated result lists in Redis.
type QueryCache struct {
	client *pkgredis.Client
	cfg    config.RedisConfig
	group  singleflight.Group
	logger *slog.Logger
	hits   atomic.Int64
	misses atomic.Int64
}

// New creates a QueryCache over an established Redis client.
func New(client *pkgredis.Client, cfg config.RedisConfig) *QueryCache {
	return &QueryCache{
		client: client,
		cfg:    cfg,
		logger: slog.Default().With("component", "query-cache"),
	}
}

// Get returns the cached result list for query, if present.
func (c *QueryCache) Get(ctx context.Context, query string, limit int) ([]string, bool) {
	key := c.buildKey(query, limit)
	data, err := c.client.Get(ctx, key)
	if err != nil {
		if !pkgredis.IsNilError(err) {
			c.logger.Error("cache get failed", "key", key, "error", err)
		}
		c.misses.Add(1)
		return nil, false
	}
	var results []string
	if err := json.Unmarshal([]byte(data), &results); err != nil {
		c.logger.Error("cache unmarshal failed", "key", key, "error", err)
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return results, true
}

// Set stores a result list for query.
func (c *QueryCache) Set(ctx context.Context, query string, limit int, results []string) {
	key := c.buildKey(query, limit)
	data, err := json.Marshal(results)
	if err != nil {
		c.logger.Error("cache marshal failed", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.cfg.CacheTTL); err != nil {
		c.logger.Error("cache set failed", "key", key, "error", err)
	}
}

// GetOrCompute returns the cached result list, or computes and caches it.
// Concurrent identical misses share one computation. The second return
// value reports whether the result came from cache.
func (c *QueryCache) GetOrCompute(
	ctx context.Context,
	query string,
	limit int,
	computeFn func() []string,
) ([]string, bool) {
	if results, ok := c.Get(ctx, query, limit); ok {
		return results, true
	}
	key := c.buildKey(query, limit)
	val, _, _ := c.group.Do(key, func() (interface{}, error) {
		if results, ok := c.Get(ctx, query, limit); ok {
			return results, nil
		}
		results := computeFn()
		c.Set(ctx, query, limit, results)
		return results, nil
	})
	return val.([]string), false
}

// Invalidate removes every cached result, typically after a reindex.
func (c *QueryCache) Invalidate(ctx context.Context) error {
	deleted, err := c.client.FlushByPattern(ctx, keyPrefix+"*")
	if err != nil {
		return fmt.Errorf("invalidating query cache: %w", err)
	}
	c.logger.Info("query cache invalidated", "keys_deleted", deleted)
	return nil
}

// Stats returns the cumulative hit and miss counts.
func (c *QueryCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

func (c *QueryCache) buildKey(query string, limit int) string {
	raw := fmt.Sprintf("%s:limit=%d", CanonicalKey(query), limit)
	hash := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("%s%x", keyPrefix, hash[:16])
}

// CanonicalKey renders a classified query in a canonical form. Operand
// order is normalized for the commutative operators (AND, OR) and preserved
// for the subtractive ones.
func CanonicalKey(query string) string {
	q := boolean.Classify(query)
	parts := append([]string(nil), q.Parts...)
	switch q.Kind {
	case boolean.KindAnd, boolean.KindOr:
		sort.Strings(parts)
	}
	return q.Kind.String() + "|" + strings.Join(parts, ",")
}
