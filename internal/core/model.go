package core

import (
	"time"
)

// Email represents a received email as a single raw text blob
type Email struct {
	Content string
}

// NewEmail creates an email from its raw text
func NewEmail(content string) Email {
	return Email{Content: content}
}

// Subject returns the first line of the email, truncated for display
func (e Email) Subject() string {
	return ExtractSubject(e.Content)
}

// Category is the triage label assigned to an email
type Category string

const (
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
	CategorySpam     Category = "Spam"
	CategoryOther    Category = "Other"
)

func (c Category) String() string {
	return string(c)
}

// AnalysisResult holds the keyword signals derived from an email
type AnalysisResult struct {
	IsUrgent      bool
	IsSpam        bool
	ContentLength int
}

// ProcessingResult is the output of running an email through the assistant
type ProcessingResult struct {
	Summary        string
	Classification Category
	Reply          string
	Notification   string

	Analysis     AnalysisResult
	ProcessingID string
	ProcessedAt  time.Time
}

// CacheEntry is a stored text-generation response
type CacheEntry struct {
	Key       string
	Text      string
	CreatedAt time.Time
	ExpiresAt time.Time
}
