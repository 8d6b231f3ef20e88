package notifier

import (
	"context"
	"io"
	"mime"
	"net"
	"net/mail"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-smtp"
	"github.com/mikey/llm-email-assistant/internal/config"
	"go.uber.org/zap/zaptest"
)

type receivedMail struct {
	from string
	to   []string
	data []byte
}

type testBackend struct {
	received chan receivedMail
}

func (b *testBackend) NewSession(c *smtp.Conn) (smtp.Session, error) {
	return &testSession{backend: b}, nil
}

type testSession struct {
	backend *testBackend
	mail    receivedMail
}

func (s *testSession) Reset() {
	s.mail = receivedMail{}
}

func (s *testSession) Logout() error {
	return nil
}

func (s *testSession) Mail(from string, _ *smtp.MailOptions) error {
	s.mail.from = from
	return nil
}

func (s *testSession) Rcpt(to string, _ *smtp.RcptOptions) error {
	s.mail.to = append(s.mail.to, to)
	return nil
}

func (s *testSession) Data(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mail.data = data
	s.backend.received <- s.mail
	return nil
}

func startTestSMTPServer(t *testing.T) (string, int, <-chan receivedMail) {
	t.Helper()

	backend := &testBackend{received: make(chan receivedMail, 1)}
	server := smtp.NewServer(backend)
	server.Domain = "localhost"
	server.ReadTimeout = 5 * time.Second
	server.WriteTimeout = 5 * time.Second

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	go server.Serve(ln)
	t.Cleanup(func() { server.Close() })

	host, portStr, _ := net.SplitHostPort(ln.Addr().String())
	port, _ := strconv.Atoi(portStr)
	return host, port, backend.received
}

func TestSMTPNotifier(t *testing.T) {
	host, port, received := startTestSMTPServer(t)

	n, err := NewSMTPNotifier(config.SMTPConfig{
		Address: host,
		Port:    port,
		From:    "assistant@example.com",
		To:      "ops@example.com",
	}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := n.Notify(ctx, "Important email received: Contract deadline", "🚨 URGENT EMAIL ALERT"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got receivedMail
	select {
	case got = <-received:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for alert mail")
	}

	if got.from != "assistant@example.com" || len(got.to) != 1 || got.to[0] != "ops@example.com" {
		t.Fatalf("unexpected envelope: from=%q to=%v", got.from, got.to)
	}

	msg, err := mail.ReadMessage(strings.NewReader(string(got.data)))
	if err != nil {
		t.Fatalf("failed to parse alert mail: %v", err)
	}

	subject, err := new(mime.WordDecoder).DecodeHeader(msg.Header.Get("Subject"))
	if err != nil {
		t.Fatalf("failed to decode subject: %v", err)
	}
	if subject != "🚨 URGENT EMAIL ALERT" {
		t.Fatalf("subject = %q", subject)
	}

	body, _ := io.ReadAll(msg.Body)
	if !strings.Contains(string(body), "Important email received: Contract deadline") {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestSMTPNotifierRequiresRecipient(t *testing.T) {
	if _, err := NewSMTPNotifier(config.SMTPConfig{Address: "localhost", Port: 25}, zaptest.NewLogger(t)); err == nil {
		t.Fatalf("expected error without recipient")
	}
}

func TestSMTPNotifierConnectionRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	addr := ln.Addr().(*net.TCPAddr)
	ln.Close()

	n, err := NewSMTPNotifier(config.SMTPConfig{Address: "127.0.0.1", Port: addr.Port, To: "ops@example.com"}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := n.Notify(context.Background(), "msg", "title"); err == nil {
		t.Fatalf("expected connection error")
	}
}
