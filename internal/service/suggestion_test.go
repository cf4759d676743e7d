package service_test

import (
	"testing"
	"time"

	"github.com/jsho982045/orelse2/internal/model"
	"github.com/jsho982045/orelse2/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSuggestion(t *testing.T) {
	goalRepo := newFakeGoalRepo()
	sugRepo := newFakeSuggestionRepo()
	svc := service.NewSuggestionService(sugRepo, goalRepo)

	goal := goalRepo.add("author-1", model.GoalStatusActive, time.Now().Add(time.Hour), true)

	suggestion, err := svc.Create(goal.ID, "suggester-1", "wear a chicken suit to work")
	require.NoError(t, err)
	assert.Equal(t, goal.ID, suggestion.GoalID)
	assert.Equal(t, "suggester-1", suggestion.SuggesterID)
	assert.Equal(t, 0, suggestion.VoteCount)
}

func TestCreateSuggestionGoalNotFound(t *testing.T) {
	goalRepo := newFakeGoalRepo()
	sugRepo := newFakeSuggestionRepo()
	svc := service.NewSuggestionService(sugRepo, goalRepo)

	_, err := svc.Create("missing-goal", "suggester-1", "anything")
	assert.ErrorIs(t, err, service.ErrGoalNotFound)
}

// The author check comes before the status check, so a self-suggestion on a
// finished goal is still rejected as a self-suggestion.
func TestCreateSuggestionOwnGoal(t *testing.T) {
	goalRepo := newFakeGoalRepo()
	sugRepo := newFakeSuggestionRepo()
	svc := service.NewSuggestionService(sugRepo, goalRepo)

	active := goalRepo.add("author-1", model.GoalStatusActive, time.Now().Add(time.Hour), true)
	completed := goalRepo.add("author-1", model.GoalStatusCompleted, time.Now().Add(time.Hour), true)

	_, err := svc.Create(active.ID, "author-1", "no self-suggestions")
	assert.ErrorIs(t, err, service.ErrOwnGoalSuggestion)

	_, err = svc.Create(completed.ID, "author-1", "still rejected the same way")
	assert.ErrorIs(t, err, service.ErrOwnGoalSuggestion)
}

func TestCreateSuggestionGoalNotActive(t *testing.T) {
	goalRepo := newFakeGoalRepo()
	sugRepo := newFakeSuggestionRepo()
	svc := service.NewSuggestionService(sugRepo, goalRepo)

	completed := goalRepo.add("author-1", model.GoalStatusCompleted, time.Now().Add(time.Hour), true)
	failed := goalRepo.add("author-1", model.GoalStatusFailed, time.Now().Add(time.Hour), true)

	_, err := svc.Create(completed.ID, "suggester-1", "too late")
	assert.ErrorIs(t, err, service.ErrGoalNotActive)

	_, err = svc.Create(failed.ID, "suggester-1", "too late")
	assert.ErrorIs(t, err, service.ErrGoalNotActive)
}
