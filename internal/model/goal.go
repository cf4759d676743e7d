package model

import (
	"time"
)

const (
	GoalStatusActive    = "ACTIVE"
	GoalStatusCompleted = "COMPLETED"
	GoalStatusFailed    = "FAILED"
)

type Goal struct {
	ID          string    `db:"id" json:"id"`
	AuthorID    string    `db:"author_id" json:"authorId"`
	Description string    `db:"description" json:"description"`
	Deadline    time.Time `db:"deadline" json:"deadline"`
	IsPublic    bool      `db:"is_public" json:"isPublic"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// EffectiveStatus interprets the stored status at read time. COMPLETED and
// FAILED are terminal and never revert. An ACTIVE goal whose deadline has
// passed is FAILED for all read purposes, even though nothing persists the
// transition. Every read path must go through this method rather than
// checking Status directly.
func (g *Goal) EffectiveStatus(now time.Time) string {
	if g.Status != GoalStatusActive {
		return g.Status
	}
	if now.After(g.Deadline) {
		return GoalStatusFailed
	}
	return GoalStatusActive
}
