package core

import (
	"fmt"
	"strings"
)

const (
	// DefaultSubject is used when the email has no text at all
	DefaultSubject = "New Email"
	// NoNotification is the notification value for non-urgent emails
	NoNotification = "None"

	// AlertTitle is the title handed to notifiers for urgent emails
	AlertTitle = "🚨 URGENT EMAIL ALERT"

	maxSubjectLength = 60
	ellipsis         = "..."
)

// ExtractSubject returns the first line of the trimmed text. Lines longer
// than 60 characters are cut to 60 and suffixed with an ellipsis.
func ExtractSubject(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return DefaultSubject
	}

	subject, _, _ := strings.Cut(trimmed, "\n")
	subject = strings.TrimSuffix(subject, "\r")

	runes := []rune(subject)
	if len(runes) > maxSubjectLength {
		return string(runes[:maxSubjectLength]) + ellipsis
	}
	return subject
}

// AlertMessage is the message sent to notifiers for an urgent email
func AlertMessage(subject string) string {
	return fmt.Sprintf("Important email received: %s", subject)
}

// notificationFor formats the notification field for an already computed urgency flag
func notificationFor(urgent bool, subject string) string {
	if !urgent {
		return NoNotification
	}
	return fmt.Sprintf("🚨 IMPORTANT EMAIL ALERT: %s", subject)
}

// BuildNotification returns the alert line for urgent emails and None otherwise
func BuildNotification(text string) string {
	return notificationFor(IsUrgent(text), ExtractSubject(text))
}
