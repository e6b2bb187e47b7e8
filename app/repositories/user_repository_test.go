package repositories

import (
	"testing"

	"blogyetu/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewBadgerUserRepository(db)

	t.Run("create and get user", func(t *testing.T) {
		user := &models.User{
			ID:           "u1",
			Name:         "Asha",
			Email:        "asha@example.com",
			Role:         models.RoleAuthor,
			PasswordHash: "hash",
		}
		require.NoError(t, repo.Create(user))

		retrieved, err := repo.GetByID("u1")
		require.NoError(t, err)
		assert.Equal(t, "Asha", retrieved.Name)
		assert.Equal(t, "hash", retrieved.PasswordHash)
	})

	t.Run("duplicate email fails", func(t *testing.T) {
		dup := &models.User{ID: "u2", Name: "Other", Email: "asha@example.com", Role: models.RoleAuthor}
		assert.ErrorIs(t, repo.Create(dup), ErrEmailTaken)

		_, err := repo.GetByID("u2")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("get by email", func(t *testing.T) {
		user, err := repo.GetByEmail("asha@example.com")
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)

		_, err = repo.GetByEmail("nobody@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
