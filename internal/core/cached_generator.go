package core

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"go.uber.org/zap"
)

// CachingGenerator serves repeated prompts from a cache repository
type CachingGenerator struct {
	next   TextGenerator
	cache  CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachingGenerator wraps a text generator with a response cache
func NewCachingGenerator(next TextGenerator, cache CacheRepository, ttl time.Duration, logger *zap.Logger) *CachingGenerator {
	return &CachingGenerator{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// CacheKey derives the cache key for a prompt and its expected output
func CacheKey(prompt string, expectedOutput string) string {
	sum := sha256.Sum256([]byte(expectedOutput + "\x00" + prompt))
	return hex.EncodeToString(sum[:])
}

// Generate returns a cached response when one exists and delegates otherwise
func (g *CachingGenerator) Generate(ctx context.Context, prompt string, expectedOutput string) (string, error) {
	key := CacheKey(prompt, expectedOutput)

	// Any lookup error is treated as a miss
	if entry, err := g.cache.Get(ctx, key); err == nil {
		g.logger.Debug("Cache hit for prompt", zap.String("key", key))
		return entry.Text, nil
	}

	text, err := g.next.Generate(ctx, prompt, expectedOutput)
	if err != nil {
		return "", err
	}

	now := time.Now()
	entry := &CacheEntry{
		Key:       key,
		Text:      text,
		CreatedAt: now,
		ExpiresAt: now.Add(g.ttl),
	}
	if err := g.cache.Set(ctx, entry); err != nil {
		g.logger.Error("Failed to update cache", zap.Error(err))
	}

	return text, nil
}
