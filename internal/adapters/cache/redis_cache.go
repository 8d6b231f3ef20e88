package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mikey/llm-email-assistant/internal/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisKeyPrefix = "email-assistant:generation:"

// RedisCache is a Redis implementation of the CacheRepository interface.
// Expiry is delegated to Redis key TTLs.
type RedisCache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisCache creates a new Redis cache and verifies the connection
func NewRedisCache(ctx context.Context, addr string, password string, db int, logger *zap.Logger) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCache{
		client: client,
		logger: logger,
	}, nil
}

func redisKey(key string) string {
	return redisKeyPrefix + key
}

// Get retrieves a cached entry by key
func (c *RedisCache) Get(ctx context.Context, key string) (*core.CacheEntry, error) {
	raw, err := c.client.Get(ctx, redisKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query cache: %w", err)
	}

	var entry core.CacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("failed to decode cache entry: %w", err)
	}

	return &entry, nil
}

// Set stores a cache entry with a TTL matching its expiry
func (c *RedisCache) Set(ctx context.Context, entry *core.CacheEntry) error {
	ttl := time.Until(entry.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	if err := c.client.Set(ctx, redisKey(entry.Key), raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to insert cache entry: %w", err)
	}

	return nil
}

// Delete removes a cache entry
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, redisKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}

// Cleanup is a no-op because Redis expires keys itself
func (c *RedisCache) Cleanup(ctx context.Context) error {
	return nil
}

// Stop closes the Redis connection
func (c *RedisCache) Stop() {
	if err := c.client.Close(); err != nil {
		c.logger.Error("Failed to close Redis client", zap.Error(err))
	}
}
