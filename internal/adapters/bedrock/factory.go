package bedrock

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/mikey/llm-email-assistant/internal/config"
	"go.uber.org/zap"
)

// Factory creates Bedrock clients
type Factory struct {
	cfg    config.BedrockConfig
	logger *zap.Logger
}

// NewFactory creates a new Bedrock factory
func NewFactory(cfg config.BedrockConfig, logger *zap.Logger) *Factory {
	return &Factory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateClient creates a new Bedrock client
func (f *Factory) CreateClient(ctx context.Context) (*BedrockClient, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(f.cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return NewBedrockClient(
		bedrockruntime.NewFromConfig(awsCfg),
		f.cfg.ModelID,
		f.cfg.MaxTokens,
		f.cfg.Temperature,
		f.cfg.TopP,
		f.logger,
	), nil
}
