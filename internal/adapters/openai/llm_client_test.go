package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mikey/llm-email-assistant/internal/config"
	"github.com/mikey/llm-email-assistant/internal/core"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap/zaptest"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *OpenAIClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewFactory(config.OpenAIConfig{
		APIKey:      "test-key",
		BaseURL:     srv.URL + "/v1",
		ModelName:   "gpt-test",
		MaxTokens:   256,
		Temperature: 0.3,
		TopP:        0.9,
	}, zaptest.NewLogger(t)).CreateClient()
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func writeCompletion(t *testing.T, w http.ResponseWriter, choices ...string) {
	t.Helper()

	resp := openai.ChatCompletionResponse{ID: "chatcmpl-test", Model: "gpt-test"}
	for i, content := range choices {
		resp.Choices = append(resp.Choices, openai.ChatCompletionChoice{
			Index:   i,
			Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content},
		})
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		t.Errorf("failed to encode response: %v", err)
	}
}

func TestGenerate(t *testing.T) {
	var got openai.ChatCompletionRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected authorization header %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		writeCompletion(t, w, "  The sender asks to move the meeting.  \n")
	})

	text, err := client.Generate(context.Background(), "Summarize this", core.SummaryExpectedOutput)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "The sender asks to move the meeting." {
		t.Fatalf("Generate() = %q", text)
	}

	if got.Model != "gpt-test" || got.MaxTokens != 256 {
		t.Fatalf("unexpected request: %+v", got)
	}
	if len(got.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(got.Messages))
	}
	if got.Messages[0].Role != openai.ChatMessageRoleSystem ||
		!strings.Contains(got.Messages[0].Content, core.SummaryExpectedOutput) {
		t.Fatalf("unexpected system message: %+v", got.Messages[0])
	}
	if got.Messages[1].Role != openai.ChatMessageRoleUser || got.Messages[1].Content != "Summarize this" {
		t.Fatalf("unexpected user message: %+v", got.Messages[1])
	}
}

func TestGenerateEmptyResponse(t *testing.T) {
	tests := map[string][]string{
		"no choices":   nil,
		"blank choice": {"   "},
	}

	for name, choices := range tests {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeCompletion(t, w, choices...)
			})

			_, err := client.Generate(context.Background(), "prompt", "")
			if !errors.Is(err, core.ErrEmptyResponse) {
				t.Fatalf("expected ErrEmptyResponse, got %v", err)
			}
		})
	}
}

func TestGenerateAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
	})

	_, err := client.Generate(context.Background(), "prompt", "")
	if err == nil || !strings.Contains(err.Error(), "failed to create chat completion with OpenAI") {
		t.Fatalf("expected wrapped API error, got %v", err)
	}
}

func TestFactoryRequiresKeyOrBaseURL(t *testing.T) {
	if _, err := NewFactory(config.OpenAIConfig{}, zaptest.NewLogger(t)).CreateClient(); err == nil {
		t.Fatalf("expected error without API key")
	}
}
