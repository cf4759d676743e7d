package repository_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jsho982045/orelse2/internal/db"
	"github.com/jsho982045/orelse2/internal/model"
	"github.com/jsho982045/orelse2/internal/repository"
	"github.com/stretchr/testify/require"
)

// openTestDB spins up a file-backed SQLite database with the real
// migrations applied. A file (not :memory:) because the pool hands out
// multiple connections and each in-memory connection would get its own
// database.
func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	database, err := db.Init("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	err = db.RunMigrations(database.DB, "sqlite")
	require.NoError(t, err)

	return database
}

func makeUser(t *testing.T, users repository.UserRepository) *model.User {
	t.Helper()

	user := &model.User{
		ID:        uuid.New().String(),
		Email:     uuid.New().String() + "@example.com",
		Name:      "Test User",
		CreatedAt: time.Now(),
	}
	require.NoError(t, users.Create(user))
	return user
}

func makeGoal(t *testing.T, goals repository.GoalRepository, authorID string, deadline time.Time) *model.Goal {
	t.Helper()

	goal := &model.Goal{
		ID:          uuid.New().String(),
		AuthorID:    authorID,
		Description: "learn to juggle",
		Deadline:    deadline,
		IsPublic:    true,
		Status:      model.GoalStatusActive,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, goals.Create(goal))
	return goal
}

func makeSuggestion(t *testing.T, suggestions repository.SuggestionRepository, goalID, suggesterID string, createdAt time.Time) *model.ElseAction {
	t.Helper()

	suggestion := &model.ElseAction{
		ID:          uuid.New().String(),
		GoalID:      goalID,
		SuggesterID: suggesterID,
		Suggestion:  "dye your hair green",
		VoteCount:   0,
		CreatedAt:   createdAt,
	}
	require.NoError(t, suggestions.Create(suggestion))
	return suggestion
}
