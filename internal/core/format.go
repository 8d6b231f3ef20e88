package core

import (
	"fmt"
)

// FormatResult renders a processing result as the four-line output block
func FormatResult(result *ProcessingResult) string {
	return fmt.Sprintf("Summary: %s\nClassification: %s\nDraft Reply: %s\nNotification: %s",
		result.Summary,
		result.Classification,
		result.Reply,
		result.Notification)
}
