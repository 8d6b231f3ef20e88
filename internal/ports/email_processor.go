package ports

import (
	"context"

	"github.com/mikey/llm-email-assistant/internal/core"
)

// EmailProcessor defines the inbound interface for triaging an email
type EmailProcessor interface {
	// ProcessEmail runs an email through the assistant and returns the result
	ProcessEmail(ctx context.Context, email core.Email) (*core.ProcessingResult, error)
}
