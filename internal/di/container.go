package di

import (
	"context"
	"io"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/llm-email-assistant/internal/config"
	"github.com/mikey/llm-email-assistant/internal/core"
	"github.com/mikey/llm-email-assistant/internal/factory"
	"github.com/mikey/llm-email-assistant/internal/ports"
	"github.com/mikey/llm-email-assistant/internal/utils"
)

// provideServices registers the assistant service and everything it depends on.
// The container must already provide *config.Config and *zap.Logger.
func provideServices(ctx context.Context, container *dig.Container, out io.Writer) error {
	// Register factories
	if err := container.Provide(factory.NewLLMFactory); err != nil {
		return err
	}
	if err := container.Provide(factory.NewCacheFactory); err != nil {
		return err
	}
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return err
	}
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) *factory.NotifierFactory {
		return factory.NewNotifierFactory(cfg, logger, out)
	}); err != nil {
		return err
	}

	// Register text generator, cached when enabled
	if err := container.Provide(func(lf *factory.LLMFactory, cf *factory.CacheFactory) (core.TextGenerator, error) {
		generator, err := lf.CreateTextGenerator(ctx)
		if err != nil {
			return nil, err
		}
		return cf.WrapGenerator(ctx, generator)
	}); err != nil {
		return err
	}

	// Register notifier
	if err := container.Provide(func(f *factory.NotifierFactory) (core.Notifier, error) {
		return f.CreateNotifier()
	}); err != nil {
		return err
	}

	// Register text processor
	if err := container.Provide(func(f *factory.TextProcessorFactory) *utils.TextProcessor {
		return f.CreateTextProcessor()
	}); err != nil {
		return err
	}

	// Register service settings
	if err := container.Provide(func(cfg *config.Config) (core.ServiceConfig, error) {
		llmConfig, err := cfg.GetLLM()
		if err != nil {
			return core.ServiceConfig{}, err
		}
		return core.ServiceConfig{
			GenerationTimeout: llmConfig.Timeout,
			MaxBodySize:       llmConfig.MaxBodySize,
		}, nil
	}); err != nil {
		return err
	}

	// Register assistant service
	if err := container.Provide(core.NewAssistantService); err != nil {
		return err
	}
	if err := container.Provide(func(s *core.AssistantService) ports.EmailProcessor {
		return s
	}); err != nil {
		return err
	}

	return nil
}
