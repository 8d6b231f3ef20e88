package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mikey/llm-email-assistant/internal/core"
	"go.uber.org/zap/zaptest"
)

func newEntry(key string, text string, ttl time.Duration) *core.CacheEntry {
	now := time.Now()
	return &core.CacheEntry{
		Key:       key,
		Text:      text,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestMemoryCacheGetSet(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(zaptest.NewLogger(t), 0)
	defer cache.Stop()

	if _, err := cache.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := cache.Set(ctx, newEntry("k1", "summary text", time.Hour)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entry, err := cache.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Text != "summary text" {
		t.Fatalf("entry text = %q", entry.Text)
	}

	if err := cache.Delete(ctx, "k1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := cache.Get(ctx, "k1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(zaptest.NewLogger(t), 0)
	defer cache.Stop()

	_ = cache.Set(ctx, newEntry("old", "stale", -time.Minute))
	_ = cache.Set(ctx, newEntry("new", "fresh", time.Hour))

	if _, err := cache.Get(ctx, "old"); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}

	if err := cache.Cleanup(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.Len() != 1 {
		t.Fatalf("expected 1 entry after cleanup, got %d", cache.Len())
	}
}

func TestMemoryCacheStopIsIdempotent(t *testing.T) {
	cache := NewMemoryCache(zaptest.NewLogger(t), time.Millisecond)
	cache.Stop()
	cache.Stop()
}
