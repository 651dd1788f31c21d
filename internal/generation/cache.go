package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ContentCache re-serves recent generation results for a (keyword, level,
// mode) triple so a repeated request does not pay for a fresh generation.
type ContentCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewContentCache creates a cache over the given redis client.
func NewContentCache(client *redis.Client, ttl time.Duration) *ContentCache {
	return &ContentCache{client: client, ttl: ttl}
}

func cacheKey(keyword, level, mode string) string {
	return fmt.Sprintf("contents:%s:%s:%s", mode, level, strings.ToLower(strings.TrimSpace(keyword)))
}

// Get returns the cached result for the triple, or (nil, nil) on a miss.
// Cache errors are returned so the caller can log them; a broken cache must
// never block generation.
func (c *ContentCache) Get(ctx context.Context, keyword, level, mode string) (*Result, error) {
	raw, err := c.client.Get(ctx, cacheKey(keyword, level, mode)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &result, nil
}

// Set stores a fresh result under the triple with the configured TTL.
func (c *ContentCache) Set(ctx context.Context, keyword, level, mode string, result *Result) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey(keyword, level, mode), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}
