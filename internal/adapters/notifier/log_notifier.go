package notifier

import (
	"context"

	"go.uber.org/zap"
)

// LogNotifier records alerts as warning log entries
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a new log notifier
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the alert
func (n *LogNotifier) Notify(ctx context.Context, message string, title string) error {
	n.logger.Warn("Urgent email alert",
		zap.String("title", title),
		zap.String("message", message))
	return nil
}
