package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/jsho982045/orelse2/internal/model"
)

var (
	ErrSuggestionNotFound = errors.New("suggestion not found")
)

type SuggestionRepository interface {
	Create(suggestion *model.ElseAction) error
	ByID(suggestionID string) (*model.ElseAction, error)
	ByGoal(goalID string) ([]*model.ElseAction, error)
}

type suggestionRepository struct {
	db *sqlx.DB
}

func NewSuggestionRepository(db *sqlx.DB) SuggestionRepository {
	return &suggestionRepository{db: db}
}

func (r *suggestionRepository) Create(suggestion *model.ElseAction) error {
	query := `INSERT INTO else_actions (id, goal_id, suggester_id, suggestion, vote_count, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		suggestion.ID,
		suggestion.GoalID,
		suggestion.SuggesterID,
		suggestion.Suggestion,
		suggestion.VoteCount,
		suggestion.CreatedAt,
	)

	return err
}

func (r *suggestionRepository) ByID(suggestionID string) (*model.ElseAction, error) {
	suggestion := &model.ElseAction{}
	query := `SELECT * FROM else_actions WHERE id = $1`

	err := r.db.Get(suggestion, query, suggestionID)
	if err == sql.ErrNoRows {
		return nil, ErrSuggestionNotFound
	}

	return suggestion, err
}

// ByGoal returns the goal's suggestions in ranking order: vote count
// descending, earliest created first on ties. The same rule model.SortSuggestions
// applies in memory.
func (r *suggestionRepository) ByGoal(goalID string) ([]*model.ElseAction, error) {
	var suggestions []*model.ElseAction
	query := `SELECT * FROM else_actions WHERE goal_id = $1 ORDER BY vote_count DESC, created_at ASC`

	err := r.db.Select(&suggestions, query, goalID)
	if err != nil {
		return nil, err
	}

	return suggestions, nil
}
