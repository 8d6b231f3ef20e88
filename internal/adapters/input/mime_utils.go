package input

import (
	"bytes"
	"encoding/base64"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"strings"
)

const maxMultipartDepth = 5

// extractText returns the text/plain content of a message body.
// Multipart bodies are walked recursively and their text/plain parts joined.
func extractText(contentType string, transferEncoding string, body io.Reader) (string, error) {
	return extractTextDepth(contentType, transferEncoding, body, 0)
}

func extractTextDepth(contentType string, transferEncoding string, body io.Reader, depth int) (string, error) {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || contentType == "" {
		// Messages without a usable Content-Type are plain text
		mediaType = "text/plain"
	}

	if !strings.HasPrefix(mediaType, "multipart/") {
		if mediaType != "text/plain" {
			return "", nil
		}
		data, err := io.ReadAll(decodeTransfer(transferEncoding, body))
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	boundary, ok := params["boundary"]
	if !ok || depth >= maxMultipartDepth {
		data, err := io.ReadAll(body)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	mr := multipart.NewReader(body, boundary)
	var textContent bytes.Buffer

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Keep whatever text was recovered before the broken part
			if textContent.Len() > 0 {
				break
			}
			return "", err
		}

		if strings.HasPrefix(strings.ToLower(part.Header.Get("Content-Disposition")), "attachment") {
			continue
		}

		// multipart.Reader already decodes quoted-printable parts
		encoding := part.Header.Get("Content-Transfer-Encoding")
		partType := part.Header.Get("Content-Type")
		if partType == "" {
			partType = "text/plain"
		}

		text, err := extractTextDepth(partType, encoding, part, depth+1)
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			if textContent.Len() > 0 {
				textContent.WriteString("\n")
			}
			textContent.WriteString(text)
		}
	}

	return textContent.String(), nil
}

// decodeTransfer wraps body in a decoder for its Content-Transfer-Encoding
func decodeTransfer(encoding string, body io.Reader) io.Reader {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "base64":
		return base64.NewDecoder(base64.StdEncoding, body)
	case "quoted-printable":
		return quotedprintable.NewReader(body)
	default:
		return body
	}
}
