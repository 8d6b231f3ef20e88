package core

import (
	"fmt"
)

const (
	// SummaryExpectedOutput describes the expected summary response
	SummaryExpectedOutput = "A 2-3 sentence summary of the email"
	// ReplyExpectedOutput describes the expected reply response
	ReplyExpectedOutput = "A professional, well-formatted email reply"

	defaultTone = "professional tone"

	assistantRole = "You are an expert email assistant. You read emails carefully, capture their essence in a few sentences and write polite, concise replies."

	summaryPromptFormat = `Summarize the following email in 2-3 clear, concise sentences.

Email Content:
%s

Capture the main point, any requests, and key details.`

	replyPromptFormat = `Draft a professional reply to the following email.

Email Content:
%s

Classification: %s

Guidelines:
- Use %s
- Keep it concise and contextually appropriate
- Address any requests or questions in the email
- If spam, simply state no reply is needed`
)

var toneGuide = map[Category]string{
	CategoryWork:     "professional, respectful tone",
	CategoryPersonal: "friendly and warm tone",
	CategorySpam:     "polite indication that no reply is needed",
	CategoryOther:    "neutral, polite tone",
}

// ToneFor returns the reply tone directive for a category
func ToneFor(category Category) string {
	if tone, ok := toneGuide[category]; ok {
		return tone
	}
	return defaultTone
}

// SummaryPrompt builds the summarization request for an email body
func SummaryPrompt(body string) string {
	return fmt.Sprintf(summaryPromptFormat, body)
}

// ReplyPrompt builds the reply-drafting request for an email body and its category
func ReplyPrompt(body string, category Category) string {
	return fmt.Sprintf(replyPromptFormat, body, category, ToneFor(category))
}

// Instruction describes the assistant role and the required final answer.
// Chat providers send it as the system message.
func Instruction(expectedOutput string) string {
	if expectedOutput == "" {
		return assistantRole
	}
	return fmt.Sprintf("%s\nExpected output: %s\nRespond with the final answer only.", assistantRole, expectedOutput)
}

// ComposePrompt joins the instruction and the task prompt into a single
// block for providers that take one text input
func ComposePrompt(prompt string, expectedOutput string) string {
	return Instruction(expectedOutput) + "\n\n" + prompt
}
