package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jsho982045/orelse2/internal/model"
	"github.com/jsho982045/orelse2/internal/repository"
)

var (
	ErrSuggestionNotFound = errors.New("suggestion not found")
	ErrDuplicateVote      = errors.New("you have already voted for this suggestion")
)

type VoteService struct {
	voteRepo repository.VoteRepository
	sugRepo  repository.SuggestionRepository
	goalRepo repository.GoalRepository
}

func NewVoteService(voteRepo repository.VoteRepository, sugRepo repository.SuggestionRepository, goalRepo repository.GoalRepository) *VoteService {
	return &VoteService{
		voteRepo: voteRepo,
		sugRepo:  sugRepo,
		goalRepo: goalRepo,
	}
}

// Cast records one vote for a suggestion and returns the new vote count.
// Voting requires the parent goal's stored status to be ACTIVE. A second
// vote from the same user returns ErrDuplicateVote with no change to the
// count.
func (s *VoteService) Cast(userID, elseActionID string) (int, error) {
	suggestion, err := s.sugRepo.ByID(elseActionID)
	if err != nil {
		if errors.Is(err, repository.ErrSuggestionNotFound) {
			return 0, ErrSuggestionNotFound
		}
		return 0, fmt.Errorf("failed to load suggestion: %w", err)
	}

	goal, err := s.goalRepo.ByID(suggestion.GoalID)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return 0, ErrGoalNotFound
		}
		return 0, fmt.Errorf("failed to load goal: %w", err)
	}

	if goal.Status != model.GoalStatusActive {
		return 0, ErrGoalNotActive
	}

	count, err := s.voteRepo.Cast(userID, elseActionID, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateVote) {
			return 0, ErrDuplicateVote
		}
		return 0, fmt.Errorf("failed to cast vote: %w", err)
	}

	return count, nil
}
