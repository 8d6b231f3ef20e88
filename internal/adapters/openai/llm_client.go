package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/mikey/llm-email-assistant/internal/core"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIClient is an implementation of the TextGenerator interface using OpenAI
type OpenAIClient struct {
	client      *openai.Client
	modelName   string
	maxTokens   int
	temperature float32
	topP        float32
	logger      *zap.Logger
}

// NewOpenAIClient creates a new OpenAI client
func NewOpenAIClient(
	client *openai.Client,
	modelName string,
	maxTokens int,
	temperature float32,
	topP float32,
	logger *zap.Logger,
) *OpenAIClient {
	return &OpenAIClient{
		client:      client,
		modelName:   modelName,
		maxTokens:   maxTokens,
		temperature: temperature,
		topP:        topP,
		logger:      logger,
	}
}

// Generate sends the prompt as a chat completion and returns the first choice
func (c *OpenAIClient) Generate(ctx context.Context, prompt string, expectedOutput string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: core.Instruction(expectedOutput),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		TopP:        c.topP,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion with OpenAI: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices from OpenAI: %w", core.ErrEmptyResponse)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("blank completion from OpenAI: %w", core.ErrEmptyResponse)
	}

	c.logger.Debug("OpenAI completion received",
		zap.String("id", resp.ID),
		zap.String("model", c.modelName),
		zap.Int("total_tokens", resp.Usage.TotalTokens))

	return text, nil
}
