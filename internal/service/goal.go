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
	ErrGoalNotFound     = errors.New("goal not found")
	ErrNotGoalAuthor    = errors.New("only the author can complete a goal")
	ErrGoalNotActive    = errors.New("goal is not active")
	ErrGoalLimitReached = errors.New("active goal limit reached")
)

type GoalService struct {
	goalRepo repository.GoalRepository
	sugRepo  repository.SuggestionRepository
	userRepo repository.UserRepository
	subSvc   *SubscriptionService
}

func NewGoalService(goalRepo repository.GoalRepository, sugRepo repository.SuggestionRepository, userRepo repository.UserRepository, subSvc *SubscriptionService) *GoalService {
	return &GoalService{
		goalRepo: goalRepo,
		sugRepo:  sugRepo,
		userRepo: userRepo,
		subSvc:   subSvc,
	}
}

// GoalDetail is a goal joined with its author and ranked suggestions.
// ChosenSuggestion is set only once the goal has effectively failed.
type GoalDetail struct {
	Goal             *model.Goal         `json:"goal"`
	Author           *model.User         `json:"author"`
	Suggestions      []*model.ElseAction `json:"suggestions"`
	EffectiveStatus  string              `json:"effectiveStatus"`
	ChosenSuggestion *model.ElseAction   `json:"chosenSuggestion"`
}

func (s *GoalService) Create(authorID, description string, deadline time.Time, isPublic bool) (*model.Goal, error) {
	limit, err := s.subSvc.ActiveGoalLimit(authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve goal limit: %w", err)
	}

	if limit >= 0 {
		count, err := s.goalRepo.CountActiveByAuthor(authorID)
		if err != nil {
			return nil, fmt.Errorf("failed to count active goals: %w", err)
		}
		if count >= limit {
			return nil, ErrGoalLimitReached
		}
	}

	goal := &model.Goal{
		ID:          uuid.New().String(),
		AuthorID:    authorID,
		Description: description,
		Deadline:    deadline,
		IsPublic:    isPublic,
		Status:      model.GoalStatusActive,
		CreatedAt:   time.Now(),
	}

	err = s.goalRepo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

// MarkComplete sets the goal to COMPLETED. Only the author can complete a
// goal, and only while the stored status is still ACTIVE. The deadline is
// not consulted here, so a late completion succeeds as long as nothing has
// persisted the failure yet.
func (s *GoalService) MarkComplete(goalID, userID string) (*model.Goal, error) {
	goal, err := s.goalRepo.ByID(goalID)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to load goal: %w", err)
	}

	if goal.AuthorID != userID {
		return nil, ErrNotGoalAuthor
	}

	if goal.Status != model.GoalStatusActive {
		return nil, ErrGoalNotActive
	}

	err = s.goalRepo.UpdateStatus(goalID, model.GoalStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to update goal status: %w", err)
	}

	goal.Status = model.GoalStatusCompleted
	return goal, nil
}

func (s *GoalService) PublicGoals(limit int) ([]*model.Goal, error) {
	goals, err := s.goalRepo.PublicGoals(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list public goals: %w", err)
	}
	return goals, nil
}

// GoalSummary is a goal annotated with its read-time status and, once the
// goal has effectively failed, the winning suggestion.
type GoalSummary struct {
	Goal             *model.Goal       `json:"goal"`
	EffectiveStatus  string            `json:"effectiveStatus"`
	ChosenSuggestion *model.ElseAction `json:"chosenSuggestion"`
}

func (s *GoalService) GoalsByAuthor(authorID string, now time.Time) ([]*GoalSummary, error) {
	goals, err := s.goalRepo.ByAuthor(authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	summaries := make([]*GoalSummary, 0, len(goals))
	for _, goal := range goals {
		summary := &GoalSummary{
			Goal:            goal,
			EffectiveStatus: goal.EffectiveStatus(now),
		}

		if summary.EffectiveStatus == model.GoalStatusFailed {
			suggestions, err := s.sugRepo.ByGoal(goal.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to load suggestions: %w", err)
			}
			summary.ChosenSuggestion = model.ChooseConsequence(suggestions)
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// GoalWithSuggestions loads a goal with its author and ranked suggestions.
// Private goals are visible to their author only; everyone else gets
// ErrGoalNotFound so the response does not leak that the goal exists.
func (s *GoalService) GoalWithSuggestions(goalID, viewerID string, now time.Time) (*GoalDetail, error) {
	goal, err := s.goalRepo.ByID(goalID)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to load goal: %w", err)
	}

	if !goal.IsPublic && goal.AuthorID != viewerID {
		return nil, ErrGoalNotFound
	}

	author, err := s.userRepo.ByID(goal.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goal author: %w", err)
	}

	suggestions, err := s.sugRepo.ByGoal(goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load suggestions: %w", err)
	}

	detail := &GoalDetail{
		Goal:            goal,
		Author:          author,
		Suggestions:     suggestions,
		EffectiveStatus: goal.EffectiveStatus(now),
	}

	if detail.EffectiveStatus == model.GoalStatusFailed {
		detail.ChosenSuggestion = model.ChooseConsequence(suggestions)
	}

	return detail, nil
}
