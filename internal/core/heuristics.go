package core

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Keyword tables. Matching is by raw substring of the lower-cased text, so
// "manager" also matches "managers" or "webmanager".
var (
	urgencyKeywords = []string{
		"urgent", "asap", "important", "deadline", "meeting", "confirm",
		"manager", "client", "tomorrow", "today", "emergency",
	}

	spamKeywords = []string{
		"lottery", "winner", "click here", "free money", "nigerian prince",
		"congratulations you won", "act now",
	}

	// spamShortCircuitKeywords is the subset checked by Classify before scoring
	spamShortCircuitKeywords = []string{
		"lottery", "winner", "click here", "free money",
	}

	workKeywords = []string{
		"meeting", "project", "deadline", "manager", "client", "proposal",
		"presentation", "report", "team", "office", "schedule",
	}

	personalKeywords = []string{
		"friend", "family", "weekend", "party", "dinner", "birthday",
	}
)

// normalize lower-cases text using full Unicode case mapping
func normalize(text string) string {
	// cases.Caser keeps state, so one is built per call
	return cases.Lower(language.Und).String(text)
}

func containsAny(lowered string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// countMatches counts keywords present in the text; repeats count once
func countMatches(lowered string, keywords []string) int {
	count := 0
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			count++
		}
	}
	return count
}

// IsUrgent reports whether the text contains any urgency keyword
func IsUrgent(text string) bool {
	return containsAny(normalize(text), urgencyKeywords)
}

// Analyze extracts urgency, spam and length signals from raw email text
func Analyze(text string) AnalysisResult {
	lowered := normalize(text)
	return AnalysisResult{
		IsUrgent:      containsAny(lowered, urgencyKeywords),
		IsSpam:        containsAny(lowered, spamKeywords),
		ContentLength: utf8.RuneCountInString(text),
	}
}

// Classify assigns a category by keyword scoring. Spam terms win outright;
// otherwise the strictly larger of the work and personal scores decides and
// a tie is Other.
func Classify(text string) Category {
	lowered := normalize(text)

	if containsAny(lowered, spamShortCircuitKeywords) {
		return CategorySpam
	}

	workScore := countMatches(lowered, workKeywords)
	personalScore := countMatches(lowered, personalKeywords)

	switch {
	case workScore > personalScore:
		return CategoryWork
	case personalScore > workScore:
		return CategoryPersonal
	default:
		return CategoryOther
	}
}
