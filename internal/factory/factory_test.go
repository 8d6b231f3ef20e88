package factory

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/mikey/llm-email-assistant/internal/adapters/notifier"
	"github.com/mikey/llm-email-assistant/internal/adapters/openai"
	"github.com/mikey/llm-email-assistant/internal/config"
	"github.com/mikey/llm-email-assistant/internal/core"
	"go.uber.org/zap/zaptest"
)

type stubGenerator struct{}

func (stubGenerator) Generate(ctx context.Context, prompt string, expectedOutput string) (string, error) {
	return "text", nil
}

func newTestConfig(settings map[string]interface{}) *config.Config {
	cfg := config.NewFromViper(config.NewEmptyViper())
	for key, value := range settings {
		cfg.Set(key, value)
	}
	return cfg
}

func TestLLMFactory(t *testing.T) {
	ctx := context.Background()
	logger := zaptest.NewLogger(t)

	cfg := newTestConfig(map[string]interface{}{"openai.api_key": "key"})
	generator, err := NewLLMFactory(cfg, logger).CreateTextGenerator(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := generator.(*openai.OpenAIClient); !ok {
		t.Fatalf("expected OpenAI client, got %T", generator)
	}

	cfg = newTestConfig(map[string]interface{}{"llm.provider": "watson"})
	if _, err := NewLLMFactory(cfg, logger).CreateTextGenerator(ctx); err == nil {
		t.Fatalf("expected error for unsupported provider")
	}

	cfg = newTestConfig(map[string]interface{}{"llm.provider": "gemini"})
	if _, err := NewLLMFactory(cfg, logger).CreateTextGenerator(ctx); err == nil {
		t.Fatalf("expected error for missing Gemini key")
	}
}

func TestCacheFactoryWrapGenerator(t *testing.T) {
	ctx := context.Background()
	logger := zaptest.NewLogger(t)
	next := stubGenerator{}

	disabled := NewCacheFactory(newTestConfig(nil), logger)
	generator, err := disabled.WrapGenerator(ctx, next)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := generator.(stubGenerator); !ok {
		t.Fatalf("disabled cache should return the generator unchanged, got %T", generator)
	}

	tests := map[string]map[string]interface{}{
		"memory": {"cache.enabled": true, "cache.type": "memory"},
		"sqlite": {
			"cache.enabled":     true,
			"cache.type":        "sqlite",
			"cache.sqlite_path": filepath.Join(t.TempDir(), "nested", "cache.db"),
		},
	}

	for name, settings := range tests {
		t.Run(name, func(t *testing.T) {
			f := NewCacheFactory(newTestConfig(settings), logger)
			defer f.Stop()

			generator, err := f.WrapGenerator(ctx, next)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, ok := generator.(*core.CachingGenerator); !ok {
				t.Fatalf("expected caching generator, got %T", generator)
			}
		})
	}
}

func TestCacheFactoryErrors(t *testing.T) {
	ctx := context.Background()
	logger := zaptest.NewLogger(t)

	f := NewCacheFactory(newTestConfig(map[string]interface{}{"cache.type": "memcached"}), logger)
	if _, err := f.CreateCacheRepository(ctx); err == nil {
		t.Fatalf("expected error for unsupported cache type")
	}

	f = NewCacheFactory(newTestConfig(map[string]interface{}{"cache.enabled": true, "cache.ttl": "forever"}), logger)
	if _, err := f.WrapGenerator(ctx, stubGenerator{}); err == nil {
		t.Fatalf("expected error for invalid ttl")
	}

	// Stop without a repository is a no-op
	NewCacheFactory(newTestConfig(nil), logger).Stop()
}

func TestNotifierFactory(t *testing.T) {
	logger := zaptest.NewLogger(t)
	var out bytes.Buffer

	n, err := NewNotifierFactory(newTestConfig(nil), logger, &out).CreateNotifier()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := n.(*notifier.ConsoleNotifier); !ok {
		t.Fatalf("default sink should be console, got %T", n)
	}

	cfg := newTestConfig(map[string]interface{}{"notify.sinks": []string{"console", "log"}})
	n, err = NewNotifierFactory(cfg, logger, &out).CreateNotifier()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := n.(*notifier.MultiNotifier); !ok {
		t.Fatalf("expected fan-out notifier, got %T", n)
	}

	cfg = newTestConfig(map[string]interface{}{"notify.sinks": []string{}})
	n, err = NewNotifierFactory(cfg, logger, &out).CreateNotifier()
	if err != nil || n != nil {
		t.Fatalf("expected no notifier, got %T, %v", n, err)
	}

	cfg = newTestConfig(map[string]interface{}{"notify.sinks": []string{"pager"}})
	if _, err := NewNotifierFactory(cfg, logger, &out).CreateNotifier(); err == nil {
		t.Fatalf("expected error for unsupported sink")
	}

	cfg = newTestConfig(map[string]interface{}{"notify.sinks": []string{"smtp"}})
	if _, err := NewNotifierFactory(cfg, logger, &out).CreateNotifier(); err == nil {
		t.Fatalf("expected error for smtp sink without recipient")
	}
}
