package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"space-booking-service/internal/domain"
	"space-booking-service/internal/platform/obs"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis-backed cache for computed quotes, keyed by canonical selection key.
//
// The cache is a read-through optimization: callers fall back to the quote
// engine on a miss or an error, so entries may expire or vanish at any time
// without affecting correctness.
type RedisQuoteCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisQuoteCache(client *redis.Client, ttl time.Duration) *RedisQuoteCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisQuoteCache{client: client, ttl: ttl}
}

// Look up a cached quote. A missing key is not an error.
func (c *RedisQuoteCache) Get(ctx context.Context, key string) (_ *domain.Quote, _ bool, err error) {
	defer obs.Time(ctx, "quotecache.Get")(&err)

	if c.client == nil {
		return nil, false, errors.New("quote cache: client is nil")
	}
	if key == "" {
		return nil, false, errors.New("get quote cache: key must not be empty")
	}

	payload, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get quote cache: redis get %q: %w", key, err)
	}

	var quote domain.Quote
	if err := json.Unmarshal([]byte(payload), &quote); err != nil {
		return nil, false, fmt.Errorf("get quote cache: decode payload for %q: %w", key, err)
	}

	return &quote, true, nil
}

// Store a quote under the given key with the configured TTL.
func (c *RedisQuoteCache) Put(ctx context.Context, key string, quote *domain.Quote) (err error) {
	defer obs.Time(ctx, "quotecache.Put")(&err)

	if c.client == nil {
		return errors.New("quote cache: client is nil")
	}
	if key == "" {
		return errors.New("insert quote cache: key must not be empty")
	}
	if quote == nil {
		return errors.New("insert quote cache: quote must be non-nil")
	}

	payload, err := json.Marshal(quote)
	if err != nil {
		return fmt.Errorf("insert quote cache: encode quote: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("insert quote cache: redis set %q: %w", key, err)
	}

	return nil
}
