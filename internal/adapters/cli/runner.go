package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mikey/llm-email-assistant/internal/core"
	"github.com/mikey/llm-email-assistant/internal/ports"
	"github.com/mikey/llm-email-assistant/internal/samples"
	"go.uber.org/zap"
)

const (
	ruleWidth    = 70
	previewRunes = 500
)

// Runner implements a command-line interface for the email assistant
type Runner struct {
	processor   ports.EmailProcessor
	out         io.Writer
	logger      *zap.Logger
	verbose     bool
	now         func() time.Time
	headerStyle lipgloss.Style
}

// NewRunner creates a new CLI runner writing to out
func NewRunner(processor ports.EmailProcessor, out io.Writer, logger *zap.Logger, verbose bool) *Runner {
	renderer := lipgloss.NewRenderer(out)
	return &Runner{
		processor:   processor,
		out:         out,
		logger:      logger,
		verbose:     verbose,
		now:         time.Now,
		headerStyle: renderer.NewStyle().Bold(true),
	}
}

// ProcessEmail processes an email and prints the result block
func (r *Runner) ProcessEmail(ctx context.Context, email core.Email) (*core.ProcessingResult, error) {
	fmt.Fprintf(r.out, "\n⏳ Processing email at %s...\n", r.now().Format("15:04:05"))

	if r.verbose {
		preview := []rune(email.Content)
		if len(preview) > previewRunes {
			preview = append(preview[:previewRunes], []rune("...")...)
		}
		fmt.Fprintf(r.out, "\nEmail preview:\n%s\n", string(preview))
	}

	startTime := time.Now()
	result, err := r.processor.ProcessEmail(ctx, email)
	if err != nil {
		r.logger.Error("Failed to process email", zap.Error(err))
		return nil, err
	}

	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(r.out, "\n%s\n%s\n%s\n", rule, r.headerStyle.Render("📋 RESULT"), rule)
	fmt.Fprintln(r.out, core.FormatResult(result))
	fmt.Fprintln(r.out, rule)

	r.logger.Debug("Email processed",
		zap.String("processing_id", result.ProcessingID),
		zap.Duration("duration", time.Since(startTime)))

	return result, nil
}

// RunExamples processes each sample email in order and stops at the first failure
func (r *Runner) RunExamples(ctx context.Context, examples []samples.Example) error {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(r.out, "%s\n%s\n%s\n", rule, r.headerStyle.Render("EMAIL AGENT - SMART EMAIL ASSISTANT"), rule)

	for _, example := range examples {
		fmt.Fprintf(r.out, "\n📧 %s\n%s\n", r.headerStyle.Render(example.Title), strings.Repeat("-", ruleWidth))
		if _, err := r.ProcessEmail(ctx, core.NewEmail(example.Content)); err != nil {
			return fmt.Errorf("failed to process %s: %w", example.Title, err)
		}
	}

	fmt.Fprintln(r.out, "\n✅ All examples completed!")
	return nil
}
