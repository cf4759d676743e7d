package model

import (
	"time"
)

// Vote records that a user voted for a suggestion. The (user, suggestion)
// pair is unique; the suggestion's vote_count is incremented in the same
// transaction that inserts the row.
type Vote struct {
	UserID       string    `db:"user_id" json:"userId"`
	ElseActionID string    `db:"else_action_id" json:"elseActionId"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
