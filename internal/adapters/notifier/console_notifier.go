package notifier

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const bannerWidth = 70

// ConsoleNotifier prints alerts as a banner on a terminal
type ConsoleNotifier struct {
	out        io.Writer
	titleStyle lipgloss.Style
	now        func() time.Time
}

// NewConsoleNotifier creates a console notifier writing to out
func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	renderer := lipgloss.NewRenderer(out)
	return &ConsoleNotifier{
		out:        out,
		titleStyle: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		now:        time.Now,
	}
}

// Notify writes the alert banner
func (n *ConsoleNotifier) Notify(ctx context.Context, message string, title string) error {
	rule := strings.Repeat("=", bannerWidth)

	var sb strings.Builder
	sb.WriteString("\n" + rule + "\n")
	sb.WriteString(n.titleStyle.Render("🔔 "+title) + "\n")
	sb.WriteString(rule + "\n")
	sb.WriteString("⏰ Time: " + n.now().Format("2006-01-02 15:04:05") + "\n")
	sb.WriteString("📧 " + message + "\n")
	sb.WriteString(rule + "\n\n")

	if _, err := io.WriteString(n.out, sb.String()); err != nil {
		return fmt.Errorf("failed to write console alert: %w", err)
	}
	return nil
}
