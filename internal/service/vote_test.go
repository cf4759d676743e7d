package service_test

import (
	"testing"
	"time"

	"github.com/jsho982045/orelse2/internal/model"
	"github.com/jsho982045/orelse2/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastVote(t *testing.T) {
	goalRepo := newFakeGoalRepo()
	sugRepo := newFakeSuggestionRepo()
	voteRepo := newFakeVoteRepo(sugRepo)
	svc := service.NewVoteService(voteRepo, sugRepo, goalRepo)

	goal := goalRepo.add("author-1", model.GoalStatusActive, time.Now().Add(time.Hour), true)
	suggestion := sugRepo.add(goal.ID, "suggester-1", 0, time.Now())

	count, err := svc.Cast("voter-1", suggestion.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = svc.Cast("voter-2", suggestion.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCastVoteDuplicate(t *testing.T) {
	goalRepo := newFakeGoalRepo()
	sugRepo := newFakeSuggestionRepo()
	voteRepo := newFakeVoteRepo(sugRepo)
	svc := service.NewVoteService(voteRepo, sugRepo, goalRepo)

	goal := goalRepo.add("author-1", model.GoalStatusActive, time.Now().Add(time.Hour), true)
	suggestion := sugRepo.add(goal.ID, "suggester-1", 0, time.Now())

	count, err := svc.Cast("voter-1", suggestion.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = svc.Cast("voter-1", suggestion.ID)
	assert.ErrorIs(t, err, service.ErrDuplicateVote)

	// Counter untouched by the rejected vote
	stored, err := sugRepo.ByID(suggestion.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.VoteCount)
}

func TestCastVoteSuggestionNotFound(t *testing.T) {
	goalRepo := newFakeGoalRepo()
	sugRepo := newFakeSuggestionRepo()
	voteRepo := newFakeVoteRepo(sugRepo)
	svc := service.NewVoteService(voteRepo, sugRepo, goalRepo)

	_, err := svc.Cast("voter-1", "missing-suggestion")
	assert.ErrorIs(t, err, service.ErrSuggestionNotFound)
}

// A suggestion whose parent goal row is gone maps to the not-found error,
// not a generic failure.
func TestCastVoteGoalMissing(t *testing.T) {
	goalRepo := newFakeGoalRepo()
	sugRepo := newFakeSuggestionRepo()
	voteRepo := newFakeVoteRepo(sugRepo)
	svc := service.NewVoteService(voteRepo, sugRepo, goalRepo)

	suggestion := sugRepo.add("missing-goal", "suggester-1", 0, time.Now())

	_, err := svc.Cast("voter-1", suggestion.ID)
	assert.ErrorIs(t, err, service.ErrGoalNotFound)
}

func TestCastVoteGoalNotActive(t *testing.T) {
	goalRepo := newFakeGoalRepo()
	sugRepo := newFakeSuggestionRepo()
	voteRepo := newFakeVoteRepo(sugRepo)
	svc := service.NewVoteService(voteRepo, sugRepo, goalRepo)

	goal := goalRepo.add("author-1", model.GoalStatusCompleted, time.Now().Add(time.Hour), true)
	suggestion := sugRepo.add(goal.ID, "suggester-1", 0, time.Now())

	_, err := svc.Cast("voter-1", suggestion.ID)
	assert.ErrorIs(t, err, service.ErrGoalNotActive)
}

// The self-vote guard was deliberately left out: a goal author may vote on
// suggestions for their own goal.
func TestCastVoteByGoalAuthor(t *testing.T) {
	goalRepo := newFakeGoalRepo()
	sugRepo := newFakeSuggestionRepo()
	voteRepo := newFakeVoteRepo(sugRepo)
	svc := service.NewVoteService(voteRepo, sugRepo, goalRepo)

	goal := goalRepo.add("author-1", model.GoalStatusActive, time.Now().Add(time.Hour), true)
	suggestion := sugRepo.add(goal.ID, "suggester-1", 0, time.Now())

	count, err := svc.Cast("author-1", suggestion.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
