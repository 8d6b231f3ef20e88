package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mikey/llm-email-assistant/internal/utils"
	"go.uber.org/zap"
)

// ErrEmptyResponse is returned by generators when the provider returns no text
var ErrEmptyResponse = errors.New("empty response from text generation service")

// ServiceConfig holds the tunables of the assistant service
type ServiceConfig struct {
	// GenerationTimeout bounds each text-generation call; zero disables it
	GenerationTimeout time.Duration
	// MaxBodySize caps the bytes of email text embedded in prompts; zero disables it
	MaxBodySize int
}

// AssistantService is the core service that triages emails and drafts responses
type AssistantService struct {
	generator     TextGenerator
	notifier      Notifier
	textProcessor *utils.TextProcessor
	logger        *zap.Logger
	cfg           ServiceConfig
}

// NewAssistantService creates a new assistant service
func NewAssistantService(
	generator TextGenerator,
	notifier Notifier,
	textProcessor *utils.TextProcessor,
	logger *zap.Logger,
	cfg ServiceConfig,
) *AssistantService {
	return &AssistantService{
		generator:     generator,
		notifier:      notifier,
		textProcessor: textProcessor,
		logger:        logger,
		cfg:           cfg,
	}
}

// ProcessEmail runs an email through analysis, classification, summarization
// and reply drafting. A failed generation call fails the whole invocation.
func (s *AssistantService) ProcessEmail(ctx context.Context, email Email) (*ProcessingResult, error) {
	processingID := uuid.NewString()
	logger := s.logger.With(zap.String("processing_id", processingID))
	startTime := time.Now()

	// Urgency is computed once and shared by the alert and the notification field
	analysis := Analyze(email.Content)
	subject := email.Subject()
	if analysis.IsUrgent {
		s.alert(ctx, logger, subject)
	}
	logger.Info("Analysis complete",
		zap.Bool("is_urgent", analysis.IsUrgent),
		zap.Bool("is_spam", analysis.IsSpam),
		zap.Int("content_length", analysis.ContentLength))

	classification := Classify(email.Content)
	logger.Info("Classification complete", zap.String("classification", classification.String()))

	body := s.promptBody(email.Content)

	logger.Debug("Generating summary")
	summary, err := s.generate(ctx, SummaryPrompt(body), SummaryExpectedOutput)
	if err != nil {
		return nil, fmt.Errorf("failed to generate summary: %w", err)
	}

	logger.Debug("Drafting reply", zap.String("tone", ToneFor(classification)))
	reply, err := s.generate(ctx, ReplyPrompt(body, classification), ReplyExpectedOutput)
	if err != nil {
		return nil, fmt.Errorf("failed to draft reply: %w", err)
	}

	result := &ProcessingResult{
		Summary:        summary,
		Classification: classification,
		Reply:          reply,
		Notification:   notificationFor(analysis.IsUrgent, subject),
		Analysis:       analysis,
		ProcessingID:   processingID,
		ProcessedAt:    time.Now(),
	}

	logger.Info("Processed email",
		zap.String("classification", classification.String()),
		zap.Bool("is_urgent", analysis.IsUrgent),
		zap.Duration("duration", time.Since(startTime)))

	return result, nil
}

// alert hands the urgent subject to the notifier; failures are only logged
func (s *AssistantService) alert(ctx context.Context, logger *zap.Logger, subject string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, AlertMessage(subject), AlertTitle); err != nil {
		logger.Warn("Failed to send urgent email alert", zap.Error(err), zap.String("subject", subject))
	}
}

// generate calls the text generator under the configured timeout and trims the result
func (s *AssistantService) generate(ctx context.Context, prompt string, expectedOutput string) (string, error) {
	if s.cfg.GenerationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.GenerationTimeout)
		defer cancel()
	}

	text, err := s.generator.Generate(ctx, prompt, expectedOutput)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// promptBody returns the email text to embed in prompts
func (s *AssistantService) promptBody(content string) string {
	if s.textProcessor == nil {
		return content
	}
	return s.textProcessor.ProcessText(content, s.cfg.MaxBodySize)
}
