package validation

import (
	"strings"
	"time"
	"unicode/utf8"
)

const maxGoalDescriptionLength = 1000

// ValidateGoal checks a goal creation request and parses the deadline. The
// returned issues are empty when the input is valid.
func ValidateGoal(description, deadline string) (time.Time, []Issue) {
	var issues []Issue

	if strings.TrimSpace(description) == "" {
		issues = append(issues, Issue{Path: "description", Message: "description is required"})
	} else if utf8.RuneCountInString(description) > maxGoalDescriptionLength {
		issues = append(issues, Issue{Path: "description", Message: "description is too long (max 1000 characters)"})
	}

	var parsed time.Time
	if deadline == "" {
		issues = append(issues, Issue{Path: "deadline", Message: "deadline is required"})
	} else {
		t, err := time.Parse(time.RFC3339, deadline)
		if err != nil {
			issues = append(issues, Issue{Path: "deadline", Message: "deadline must be a valid RFC 3339 timestamp"})
		} else {
			parsed = t
		}
	}

	return parsed, issues
}
