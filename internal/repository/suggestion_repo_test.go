package repository_test

import (
	"testing"
	"time"

	"github.com/jsho982045/orelse2/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionByGoalOrdering(t *testing.T) {
	database := openTestDB(t)
	users := repository.NewUserRepository(database)
	goals := repository.NewGoalRepository(database)
	suggestions := repository.NewSuggestionRepository(database)
	votes := repository.NewVoteRepository(database)

	author := makeUser(t, users)
	suggester := makeUser(t, users)
	goal := makeGoal(t, goals, author.ID, time.Now().Add(time.Hour))

	now := time.Now()
	older := makeSuggestion(t, suggestions, goal.ID, suggester.ID, now.Add(-2*time.Hour))
	newer := makeSuggestion(t, suggestions, goal.ID, suggester.ID, now.Add(-time.Hour))
	popular := makeSuggestion(t, suggestions, goal.ID, suggester.ID, now)

	_, err := votes.Cast(author.ID, popular.ID, now)
	require.NoError(t, err)

	listed, err := suggestions.ByGoal(goal.ID)
	require.NoError(t, err)
	require.Len(t, listed, 3)

	// Highest vote count first, then oldest first among ties
	assert.Equal(t, popular.ID, listed[0].ID)
	assert.Equal(t, older.ID, listed[1].ID)
	assert.Equal(t, newer.ID, listed[2].ID)
}

func TestSuggestionByIDNotFound(t *testing.T) {
	database := openTestDB(t)
	suggestions := repository.NewSuggestionRepository(database)

	_, err := suggestions.ByID("missing")
	assert.ErrorIs(t, err, repository.ErrSuggestionNotFound)
}
