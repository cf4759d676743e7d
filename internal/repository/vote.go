package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jsho982045/orelse2/internal/model"
)

var (
	ErrDuplicateVote = errors.New("vote already cast")
)

type VoteRepository interface {
	Cast(userID, elseActionID string, castAt time.Time) (int, error)
}

type voteRepository struct {
	db *sqlx.DB
}

func NewVoteRepository(db *sqlx.DB) VoteRepository {
	return &voteRepository{db: db}
}

// Cast inserts the vote record and increments the suggestion's vote count in
// one transaction. The unique index on (user_id, else_action_id) rejects a
// second vote from the same user; in that case nothing is written and
// ErrDuplicateVote is returned. Returns the new vote count.
func (r *voteRepository) Cast(userID, elseActionID string, castAt time.Time) (int, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, fmt.Errorf("failed to begin vote transaction: %w", err)
	}
	defer tx.Rollback()

	vote := &model.Vote{UserID: userID, ElseActionID: elseActionID, CreatedAt: castAt}
	insert := `INSERT INTO else_action_votes (user_id, else_action_id, created_at)
	           VALUES (:user_id, :else_action_id, :created_at)`
	_, err = tx.NamedExec(insert, vote)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateVote
		}
		return 0, err
	}

	var count int
	update := `UPDATE else_actions SET vote_count = vote_count + 1 WHERE id = $1 RETURNING vote_count`
	err = tx.QueryRow(update, elseActionID).Scan(&count)
	if err != nil {
		return 0, err
	}

	err = tx.Commit()
	if err != nil {
		return 0, fmt.Errorf("failed to commit vote transaction: %w", err)
	}

	return count, nil
}

// isUniqueViolation detects a unique-constraint error for both SQLite and
// PostgreSQL, same technique the user repository uses for duplicate emails.
func isUniqueViolation(err error) bool {
	errStr := err.Error()
	return strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value")
}
