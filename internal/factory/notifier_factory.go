package factory

import (
	"fmt"
	"io"

	"github.com/mikey/llm-email-assistant/internal/adapters/notifier"
	"github.com/mikey/llm-email-assistant/internal/config"
	"github.com/mikey/llm-email-assistant/internal/core"
	"go.uber.org/zap"
)

// NotifierFactory creates the alert sinks named in the configuration
type NotifierFactory struct {
	cfg    *config.Config
	logger *zap.Logger
	out    io.Writer
}

// NewNotifierFactory creates a new notifier factory; console alerts go to out
func NewNotifierFactory(cfg *config.Config, logger *zap.Logger, out io.Writer) *NotifierFactory {
	return &NotifierFactory{
		cfg:    cfg,
		logger: logger,
		out:    out,
	}
}

// CreateNotifier creates a notifier for the configured sinks.
// It returns nil when no sink is configured.
func (f *NotifierFactory) CreateNotifier() (core.Notifier, error) {
	notifyConfig := f.cfg.GetNotify()

	var sinks []core.Notifier
	for _, name := range notifyConfig.Sinks {
		switch name {
		case "console":
			sinks = append(sinks, notifier.NewConsoleNotifier(f.out))
		case "log":
			sinks = append(sinks, notifier.NewLogNotifier(f.logger))
		case "smtp":
			sink, err := notifier.NewSMTPNotifier(notifyConfig.SMTP, f.logger)
			if err != nil {
				return nil, err
			}
			sinks = append(sinks, sink)
		default:
			return nil, fmt.Errorf("unsupported notification sink: %s", name)
		}
	}

	switch len(sinks) {
	case 0:
		f.logger.Info("No notification sinks configured")
		return nil, nil
	case 1:
		return sinks[0], nil
	default:
		return notifier.NewMultiNotifier(sinks...), nil
	}
}
