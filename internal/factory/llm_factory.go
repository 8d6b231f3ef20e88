package factory

import (
	"context"
	"fmt"

	"github.com/mikey/llm-email-assistant/internal/adapters/bedrock"
	"github.com/mikey/llm-email-assistant/internal/adapters/gemini"
	"github.com/mikey/llm-email-assistant/internal/adapters/openai"
	"github.com/mikey/llm-email-assistant/internal/config"
	"github.com/mikey/llm-email-assistant/internal/core"
	"go.uber.org/zap"
)

// LLMFactory creates text generators for the configured provider
type LLMFactory struct {
	cfg    *config.Config
	logger *zap.Logger
	gemini *gemini.GeminiClient
}

// NewLLMFactory creates a new LLM factory
func NewLLMFactory(cfg *config.Config, logger *zap.Logger) *LLMFactory {
	return &LLMFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateTextGenerator creates a text generator based on the configuration
func (f *LLMFactory) CreateTextGenerator(ctx context.Context) (core.TextGenerator, error) {
	llmConfig, err := f.cfg.GetLLM()
	if err != nil {
		return nil, err
	}

	f.logger.Info("Creating text generator", zap.String("provider", llmConfig.Provider))

	switch llmConfig.Provider {
	case "openai":
		return openai.NewFactory(f.cfg.GetOpenAI(), f.logger).CreateClient()
	case "gemini":
		client, err := gemini.NewFactory(f.cfg.GetGemini(), f.logger).CreateClient(ctx)
		if err != nil {
			return nil, err
		}
		f.gemini = client
		return client, nil
	case "bedrock":
		return bedrock.NewFactory(f.cfg.GetBedrock(), f.logger).CreateClient(ctx)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", llmConfig.Provider)
	}
}

// Close releases provider clients that hold connections
func (f *LLMFactory) Close() error {
	if f.gemini != nil {
		return f.gemini.Close()
	}
	return nil
}
