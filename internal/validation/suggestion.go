package validation

import (
	"strings"
	"unicode/utf8"
)

const maxSuggestionLength = 500

// ValidateSuggestion checks a consequence suggestion request.
func ValidateSuggestion(goalID, suggestion string) []Issue {
	var issues []Issue

	if strings.TrimSpace(goalID) == "" {
		issues = append(issues, Issue{Path: "goalId", Message: "goalId is required"})
	}

	if strings.TrimSpace(suggestion) == "" {
		issues = append(issues, Issue{Path: "suggestion", Message: "suggestion is required"})
	} else if utf8.RuneCountInString(suggestion) > maxSuggestionLength {
		issues = append(issues, Issue{Path: "suggestion", Message: "suggestion is too long (max 500 characters)"})
	}

	return issues
}
