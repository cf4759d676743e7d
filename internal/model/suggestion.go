package model

import (
	"sort"
	"time"
)

// ElseAction is an "or else" consequence suggested for someone else's goal.
type ElseAction struct {
	ID          string    `db:"id" json:"id"`
	GoalID      string    `db:"goal_id" json:"goalId"`
	SuggesterID string    `db:"suggester_id" json:"suggesterId"`
	Suggestion  string    `db:"suggestion" json:"suggestion"`
	VoteCount   int       `db:"vote_count" json:"voteCount"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// SortSuggestions orders suggestions by vote count descending, then by
// creation time ascending so the earliest submission wins ties. This is the
// one ordering rule used for both listing and winner selection.
func SortSuggestions(suggestions []*ElseAction) {
	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].VoteCount != suggestions[j].VoteCount {
			return suggestions[i].VoteCount > suggestions[j].VoteCount
		}
		return suggestions[i].CreatedAt.Before(suggestions[j].CreatedAt)
	})
}

// ChooseConsequence returns the winning suggestion, or nil when none were
// made ("no consequence suggested" is a distinct state, not an error).
// Callers are responsible for only consulting this for goals whose effective
// status is FAILED.
func ChooseConsequence(suggestions []*ElseAction) *ElseAction {
	if len(suggestions) == 0 {
		return nil
	}
	sorted := make([]*ElseAction, len(suggestions))
	copy(sorted, suggestions)
	SortSuggestions(sorted)
	return sorted[0]
}
