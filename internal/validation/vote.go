package validation

import "strings"

// ValidateVote checks a vote request.
func ValidateVote(elseActionID string) []Issue {
	var issues []Issue

	if strings.TrimSpace(elseActionID) == "" {
		issues = append(issues, Issue{Path: "elseActionId", Message: "elseActionId is required"})
	}

	return issues
}
