package lawref

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache is a read-through cache in front of another Store. Cache
// failures fall back to the inner store: a flaky cache must never make law
// lookup worse than no cache at all.
type RedisCache struct {
	inner  Store
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache wraps the inner store with a Redis read-through cache.
func NewRedisCache(inner Store, client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{inner: inner, client: client, ttl: ttl}
}

func cacheKey(code string) string {
	return "lawref:" + code
}

func (c *RedisCache) FindByCodes(ctx context.Context, codes []string) (map[string]LawDoc, []string, error) {
	found := make(map[string]LawDoc, len(codes))
	var uncached []string

	for _, code := range codes {
		data, err := c.client.Get(ctx, cacheKey(code)).Bytes()
		if err != nil {
			uncached = append(uncached, code)
			continue
		}
		var doc LawDoc
		if err := json.Unmarshal(data, &doc); err != nil {
			uncached = append(uncached, code)
			continue
		}
		found[code] = doc
	}

	if len(uncached) == 0 {
		return found, nil, nil
	}

	innerFound, missing, err := c.inner.FindByCodes(ctx, uncached)
	if err != nil {
		return nil, nil, err
	}
	for code, doc := range innerFound {
		found[code] = doc
		if data, err := json.Marshal(doc); err == nil {
			// Backfill is best effort.
			c.client.Set(ctx, cacheKey(code), data, c.ttl)
		}
	}
	return found, missing, nil
}
