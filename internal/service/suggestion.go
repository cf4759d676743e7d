package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jsho982045/orelse2/internal/model"
	"github.com/jsho982045/orelse2/internal/repository"
)

var (
	ErrOwnGoalSuggestion = errors.New("cannot suggest a consequence for your own goal")
)

type SuggestionService struct {
	sugRepo  repository.SuggestionRepository
	goalRepo repository.GoalRepository
}

func NewSuggestionService(sugRepo repository.SuggestionRepository, goalRepo repository.GoalRepository) *SuggestionService {
	return &SuggestionService{
		sugRepo:  sugRepo,
		goalRepo: goalRepo,
	}
}

// Create adds a suggestion to a goal. Authors cannot suggest on their own
// goals, checked before anything else so a self-suggestion is rejected the
// same way on finished goals. The stored status must be ACTIVE.
func (s *SuggestionService) Create(goalID, suggesterID, text string) (*model.ElseAction, error) {
	goal, err := s.goalRepo.ByID(goalID)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to load goal: %w", err)
	}

	if goal.AuthorID == suggesterID {
		return nil, ErrOwnGoalSuggestion
	}

	if goal.Status != model.GoalStatusActive {
		return nil, ErrGoalNotActive
	}

	suggestion := &model.ElseAction{
		ID:          uuid.New().String(),
		GoalID:      goalID,
		SuggesterID: suggesterID,
		Suggestion:  text,
		VoteCount:   0,
		CreatedAt:   time.Now(),
	}

	err = s.sugRepo.Create(suggestion)
	if err != nil {
		return nil, fmt.Errorf("failed to create suggestion: %w", err)
	}

	return suggestion, nil
}
