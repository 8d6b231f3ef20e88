package input

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"net/mail"
	"strings"

	"github.com/mikey/llm-email-assistant/internal/core"
)

var headerDecoder = new(mime.WordDecoder)

// ReadEmail reads an email from r. Raw input is used as-is; with parseMIME the
// message is parsed and rebuilt as its subject line followed by the plain text body.
func ReadEmail(r io.Reader, parseMIME bool) (core.Email, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return core.Email{}, fmt.Errorf("failed to read email: %w", err)
	}

	if !parseMIME {
		return core.NewEmail(string(raw)), nil
	}

	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	if err != nil {
		return core.Email{}, fmt.Errorf("failed to parse email message: %w", err)
	}

	subject := msg.Header.Get("Subject")
	if decoded, err := headerDecoder.DecodeHeader(subject); err == nil {
		subject = decoded
	}

	body, err := extractText(msg.Header.Get("Content-Type"), msg.Header.Get("Content-Transfer-Encoding"), msg.Body)
	if err != nil {
		return core.Email{}, fmt.Errorf("failed to extract text content: %w", err)
	}

	return core.NewEmail(strings.TrimSpace(subject) + "\n" + strings.TrimSpace(body)), nil
}
