package domain

import "strings"

// Suggestion is the backend's advisory classification of a description.
// Either field may be missing.
type Suggestion struct {
	SuggestedCategory Category `json:"suggested_category,omitempty"`
	SuggestedPriority Priority `json:"suggested_priority,omitempty"`
}

// Complete reports whether both fields are present and recognised.
func (s Suggestion) Complete() bool {
	return s.SuggestedCategory.Validate() == nil && s.SuggestedPriority.Validate() == nil
}

// ShouldClassify reports whether a description is long enough to send for
// classification.
func ShouldClassify(description string) bool {
	return len([]rune(strings.TrimSpace(description))) >= ClassifyMinLength
}

// Truncate shortens s to at most n runes, appending "..." when it cuts.
// Counting runes keeps multi-byte characters intact.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
