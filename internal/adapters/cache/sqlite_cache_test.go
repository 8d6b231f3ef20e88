package cache

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

func newTestSQLiteCache(t *testing.T, path string) *SQLiteCache {
	t.Helper()

	cache, err := NewSQLiteCache(path, zaptest.NewLogger(t), 0)
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}
	t.Cleanup(cache.Stop)
	return cache
}

func TestSQLiteCacheGetSet(t *testing.T) {
	ctx := context.Background()
	cache := newTestSQLiteCache(t, ":memory:")

	if _, err := cache.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	entry := newEntry("k1", "first", time.Hour)
	if err := cache.Set(ctx, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Overwrites replace the stored response
	entry.Text = "second"
	if err := cache.Set(ctx, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := cache.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text != "second" || got.ExpiresAt.Unix() != entry.ExpiresAt.Unix() {
		t.Fatalf("unexpected entry: %+v", got)
	}

	if err := cache.Delete(ctx, "k1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := cache.Get(ctx, "k1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestSQLiteCacheExpiry(t *testing.T) {
	ctx := context.Background()
	cache := newTestSQLiteCache(t, ":memory:")

	_ = cache.Set(ctx, newEntry("old", "stale", -time.Hour))
	_ = cache.Set(ctx, newEntry("new", "fresh", time.Hour))

	if _, err := cache.Get(ctx, "old"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expired entry should not be returned, got %v", err)
	}

	if err := cache.Cleanup(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var count int
	if err := cache.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM generation_cache`).Scan(&count); err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 row after cleanup, got %d", count)
	}
}

func TestSQLiteCachePersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	first, err := NewSQLiteCache(path, zaptest.NewLogger(t), 0)
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}
	if err := first.Set(ctx, newEntry("k", "kept", time.Hour)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first.Stop()

	second := newTestSQLiteCache(t, path)
	got, err := second.Get(ctx, "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text != "kept" {
		t.Fatalf("entry text = %q", got.Text)
	}
}
