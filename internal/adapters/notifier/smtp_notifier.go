package notifier

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/google/uuid"
	"github.com/mikey/llm-email-assistant/internal/config"
	"go.uber.org/zap"
)

const defaultSMTPTimeout = 30 * time.Second

// SMTPNotifier mails alerts to a fixed recipient
type SMTPNotifier struct {
	cfg    config.SMTPConfig
	logger *zap.Logger
	now    func() time.Time
}

// NewSMTPNotifier creates a new SMTP notifier
func NewSMTPNotifier(cfg config.SMTPConfig, logger *zap.Logger) (*SMTPNotifier, error) {
	if cfg.To == "" {
		return nil, errors.New("notify.smtp.to is required for the smtp sink")
	}
	if cfg.From == "" {
		cfg.From = "email-assistant@localhost"
	}

	return &SMTPNotifier{
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}, nil
}

// Notify sends the alert as a plain text mail
func (n *SMTPNotifier) Notify(ctx context.Context, message string, title string) error {
	addr := net.JoinHostPort(n.cfg.Address, strconv.Itoa(n.cfg.Port))

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(defaultSMTPTimeout)
	}
	if err := conn.SetDeadline(deadline); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set connection deadline: %w", err)
	}

	c := smtp.NewClient(conn)
	defer c.Close()

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}

	if err := c.Hello(hostname); err != nil {
		return fmt.Errorf("EHLO failed: %w", err)
	}

	if n.cfg.Username != "" {
		if ok, _ := c.Extension("AUTH"); ok {
			if err := c.Auth(sasl.NewPlainClient("", n.cfg.Username, n.cfg.Password)); err != nil {
				return fmt.Errorf("AUTH failed: %w", err)
			}
		} else {
			n.logger.Warn("SMTP server does not advertise AUTH, sending unauthenticated",
				zap.String("address", addr))
		}
	}

	if err := c.Mail(n.cfg.From, nil); err != nil {
		return fmt.Errorf("MAIL FROM failed: %w", err)
	}

	if err := c.Rcpt(n.cfg.To, nil); err != nil {
		return fmt.Errorf("RCPT TO failed: %w", err)
	}

	wc, err := c.Data()
	if err != nil {
		return fmt.Errorf("DATA command failed: %w", err)
	}

	if _, err := wc.Write(n.buildMessage(message, title)); err != nil {
		wc.Close()
		return fmt.Errorf("failed to send alert data: %w", err)
	}

	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	if err := c.Quit(); err != nil {
		// The alert has already been accepted
		n.logger.Warn("QUIT command failed", zap.Error(err))
	}

	n.logger.Debug("Alert mail sent", zap.String("to", n.cfg.To))
	return nil
}

// buildMessage renders the RFC 5322 alert message
func (n *SMTPNotifier) buildMessage(message string, title string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", n.cfg.From)
	fmt.Fprintf(&buf, "To: %s\r\n", n.cfg.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", title))
	fmt.Fprintf(&buf, "Date: %s\r\n", n.now().Format(time.RFC1123Z))
	fmt.Fprintf(&buf, "Message-ID: <%s@email-assistant>\r\n", uuid.NewString())
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	buf.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(message)
	buf.WriteString("\r\n")
	return buf.Bytes()
}
