package repository_test

import (
	"testing"
	"time"

	"github.com/jsho982045/orelse2/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteCast(t *testing.T) {
	database := openTestDB(t)
	users := repository.NewUserRepository(database)
	goals := repository.NewGoalRepository(database)
	suggestions := repository.NewSuggestionRepository(database)
	votes := repository.NewVoteRepository(database)

	author := makeUser(t, users)
	suggester := makeUser(t, users)
	voter := makeUser(t, users)

	goal := makeGoal(t, goals, author.ID, time.Now().Add(time.Hour))
	suggestion := makeSuggestion(t, suggestions, goal.ID, suggester.ID, time.Now())

	count, err := votes.Cast(voter.ID, suggestion.ID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// The increment is visible on re-read
	stored, err := suggestions.ByID(suggestion.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.VoteCount)

	// Different voters keep incrementing
	count, err = votes.Cast(suggester.ID, suggestion.ID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestVoteCastDuplicate(t *testing.T) {
	database := openTestDB(t)
	users := repository.NewUserRepository(database)
	goals := repository.NewGoalRepository(database)
	suggestions := repository.NewSuggestionRepository(database)
	votes := repository.NewVoteRepository(database)

	author := makeUser(t, users)
	suggester := makeUser(t, users)
	voter := makeUser(t, users)

	goal := makeGoal(t, goals, author.ID, time.Now().Add(time.Hour))
	suggestion := makeSuggestion(t, suggestions, goal.ID, suggester.ID, time.Now())

	_, err := votes.Cast(voter.ID, suggestion.ID, time.Now())
	require.NoError(t, err)

	_, err = votes.Cast(voter.ID, suggestion.ID, time.Now())
	assert.ErrorIs(t, err, repository.ErrDuplicateVote)

	// The rejected vote never touched the counter
	stored, err := suggestions.ByID(suggestion.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.VoteCount)
}
