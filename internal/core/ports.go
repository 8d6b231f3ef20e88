package core

import (
	"context"
)

// TextGenerator defines the interface for prompt-to-text services
type TextGenerator interface {
	// Generate sends a prompt and a description of the expected output and returns the generated text
	Generate(ctx context.Context, prompt string, expectedOutput string) (string, error)
}

// Notifier defines the interface for delivering urgent email alerts
type Notifier interface {
	// Notify delivers an alert message under the given title
	Notify(ctx context.Context, message string, title string) error
}

// CacheRepository defines the interface for caching generated text
type CacheRepository interface {
	// Get retrieves a cached entry by key
	Get(ctx context.Context, key string) (*CacheEntry, error)

	// Set stores a cache entry
	Set(ctx context.Context, entry *CacheEntry) error

	// Delete removes a cache entry
	Delete(ctx context.Context, key string) error

	// Cleanup removes expired entries
	Cleanup(ctx context.Context) error
}
