package factory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mikey/llm-email-assistant/internal/adapters/cache"
	"github.com/mikey/llm-email-assistant/internal/config"
	"github.com/mikey/llm-email-assistant/internal/core"
	"go.uber.org/zap"
)

// stoppableCache is a cache repository that owns background work or connections
type stoppableCache interface {
	core.CacheRepository
	Stop()
}

// CacheFactory creates cache repositories based on configuration
type CacheFactory struct {
	cfg    *config.Config
	logger *zap.Logger
	repo   stoppableCache
}

// NewCacheFactory creates a new cache factory
func NewCacheFactory(cfg *config.Config, logger *zap.Logger) *CacheFactory {
	return &CacheFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateCacheRepository creates a cache repository based on the configuration
func (f *CacheFactory) CreateCacheRepository(ctx context.Context) (core.CacheRepository, error) {
	cacheConfig, err := f.cfg.GetCache()
	if err != nil {
		return nil, fmt.Errorf("invalid cache configuration: %w", err)
	}

	var repo stoppableCache
	switch cacheConfig.Type {
	case "memory":
		repo = cache.NewMemoryCache(f.logger, cacheConfig.CleanupFrequency)
	case "sqlite":
		if err := os.MkdirAll(filepath.Dir(cacheConfig.SQLitePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create SQLite directory: %w", err)
		}
		repo, err = cache.NewSQLiteCache(cacheConfig.SQLitePath, f.logger, cacheConfig.CleanupFrequency)
	case "mysql":
		repo, err = cache.NewMySQLCache(ctx, cacheConfig.MySQLDSN, f.logger, cacheConfig.CleanupFrequency)
	case "redis":
		repo, err = cache.NewRedisCache(ctx, cacheConfig.RedisAddr, cacheConfig.RedisPassword, cacheConfig.RedisDB, f.logger)
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cacheConfig.Type)
	}
	if err != nil {
		return nil, err
	}

	f.repo = repo
	return repo, nil
}

// WrapGenerator puts a response cache in front of next when caching is enabled
func (f *CacheFactory) WrapGenerator(ctx context.Context, next core.TextGenerator) (core.TextGenerator, error) {
	cacheConfig, err := f.cfg.GetCache()
	if err != nil {
		return nil, fmt.Errorf("invalid cache configuration: %w", err)
	}
	if !cacheConfig.Enabled {
		return next, nil
	}

	repo, err := f.CreateCacheRepository(ctx)
	if err != nil {
		return nil, err
	}

	f.logger.Info("Generation cache enabled",
		zap.String("type", cacheConfig.Type),
		zap.Duration("ttl", cacheConfig.TTL))

	return core.NewCachingGenerator(next, repo, cacheConfig.TTL, f.logger), nil
}

// Stop stops the cache repository created by this factory, if any
func (f *CacheFactory) Stop() {
	if f.repo != nil {
		f.repo.Stop()
	}
}
