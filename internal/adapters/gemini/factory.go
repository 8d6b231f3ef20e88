package gemini

import (
	"context"
	"errors"

	"github.com/mikey/llm-email-assistant/internal/config"
	"go.uber.org/zap"
)

// Factory creates new instances of GeminiClient
type Factory struct {
	cfg    config.GeminiConfig
	logger *zap.Logger
}

// NewFactory creates a new factory for GeminiClient instances
func NewFactory(cfg config.GeminiConfig, logger *zap.Logger) *Factory {
	return &Factory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateClient creates a new GeminiClient
func (f *Factory) CreateClient(ctx context.Context) (*GeminiClient, error) {
	if f.cfg.APIKey == "" {
		return nil, errors.New("Gemini API key is required")
	}

	return NewGeminiClient(
		ctx,
		f.cfg.APIKey,
		f.cfg.ModelName,
		f.cfg.MaxTokens,
		f.cfg.Temperature,
		f.cfg.TopP,
		f.logger,
	)
}
