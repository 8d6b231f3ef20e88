package notifier

import (
	"context"
	"errors"

	"github.com/mikey/llm-email-assistant/internal/core"
)

// MultiNotifier delivers every alert to all of its sinks
type MultiNotifier struct {
	sinks []core.Notifier
}

// NewMultiNotifier creates a fan-out notifier
func NewMultiNotifier(sinks ...core.Notifier) *MultiNotifier {
	return &MultiNotifier{sinks: sinks}
}

// Notify attempts every sink and returns their joined errors
func (n *MultiNotifier) Notify(ctx context.Context, message string, title string) error {
	var errs []error
	for _, sink := range n.sinks {
		if err := sink.Notify(ctx, message, title); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
