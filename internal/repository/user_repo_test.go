package repository_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jsho982045/orelse2/internal/model"
	"github.com/jsho982045/orelse2/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateAndLookup(t *testing.T) {
	database := openTestDB(t)
	users := repository.NewUserRepository(database)

	user := makeUser(t, users)

	byID, err := users.ByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)

	byEmail, err := users.ByEmail(user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserNotFound(t *testing.T) {
	database := openTestDB(t)
	users := repository.NewUserRepository(database)

	_, err := users.ByID("missing")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = users.ByEmail("nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserDuplicateEmail(t *testing.T) {
	database := openTestDB(t)
	users := repository.NewUserRepository(database)

	user := makeUser(t, users)

	dup := &model.User{
		ID:        uuid.New().String(),
		Email:     user.Email,
		Name:      "Impostor",
		CreatedAt: time.Now(),
	}
	err := users.Create(dup)
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}
