package openai

import (
	"errors"

	"github.com/mikey/llm-email-assistant/internal/config"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Factory creates new instances of OpenAIClient
type Factory struct {
	cfg    config.OpenAIConfig
	logger *zap.Logger
}

// NewFactory creates a new factory for OpenAIClient instances
func NewFactory(cfg config.OpenAIConfig, logger *zap.Logger) *Factory {
	return &Factory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateClient creates a new OpenAIClient
func (f *Factory) CreateClient() (*OpenAIClient, error) {
	// A custom base URL may point at a local server that needs no key
	if f.cfg.APIKey == "" && f.cfg.BaseURL == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	clientCfg := openai.DefaultConfig(f.cfg.APIKey)
	if f.cfg.BaseURL != "" {
		clientCfg.BaseURL = f.cfg.BaseURL
	}

	return NewOpenAIClient(
		openai.NewClientWithConfig(clientCfg),
		f.cfg.ModelName,
		f.cfg.MaxTokens,
		f.cfg.Temperature,
		f.cfg.TopP,
		f.logger,
	), nil
}
