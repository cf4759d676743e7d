package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/jsho982045/orelse2/internal/model"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalRepository interface {
	Create(goal *model.Goal) error
	ByID(goalID string) (*model.Goal, error)
	PublicGoals(limit int) ([]*model.Goal, error)
	ByAuthor(authorID string) ([]*model.Goal, error)
	CountActiveByAuthor(authorID string) (int, error)
	UpdateStatus(goalID, status string) error
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(goal *model.Goal) error {
	query := `INSERT INTO goals (id, author_id, description, deadline, is_public, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query,
		goal.ID,
		goal.AuthorID,
		goal.Description,
		goal.Deadline,
		goal.IsPublic,
		goal.Status,
		goal.CreatedAt,
	)

	return err
}

func (r *goalRepository) ByID(goalID string) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT * FROM goals WHERE id = $1`

	err := r.db.Get(goal, query, goalID)
	if err == sql.ErrNoRows {
		return nil, ErrGoalNotFound
	}

	return goal, err
}

func (r *goalRepository) PublicGoals(limit int) ([]*model.Goal, error) {
	var goals []*model.Goal
	query := `SELECT * FROM goals WHERE is_public = $1 ORDER BY deadline DESC LIMIT $2`

	err := r.db.Select(&goals, query, true, limit)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) ByAuthor(authorID string) ([]*model.Goal, error) {
	var goals []*model.Goal
	query := `SELECT * FROM goals WHERE author_id = $1 ORDER BY deadline DESC`

	err := r.db.Select(&goals, query, authorID)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) CountActiveByAuthor(authorID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM goals WHERE author_id = $1 AND status = $2`
	err := r.db.QueryRow(query, authorID, model.GoalStatusActive).Scan(&count)
	return count, err
}

func (r *goalRepository) UpdateStatus(goalID, status string) error {
	query := `UPDATE goals SET status = $1 WHERE id = $2`

	result, err := r.db.Exec(query, status, goalID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}
