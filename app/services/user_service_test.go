package services

import (
	"testing"

	"blogyetu/app/models"
	"blogyetu/app/repositories"
	"blogyetu/app/repositories/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestUserServiceRegister(t *testing.T) {
	service := NewUserService(mock.NewUserRepository(), testSecret)

	t.Run("registers an author", func(t *testing.T) {
		user, token, err := service.Register(RegisterInput{
			Name:     "Asha",
			Email:    "asha@example.com",
			Password: "s3cret-pass",
		})
		require.NoError(t, err)
		assert.Equal(t, models.RoleAuthor, user.Role)
		assert.NotEqual(t, "s3cret-pass", user.PasswordHash)

		parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
			return testSecret, nil
		})
		require.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, user.ID, claims["sub"])
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, _, err := service.Register(RegisterInput{
			Name:     "Imposter",
			Email:    "asha@example.com",
			Password: "another-pass",
		})
		assert.ErrorIs(t, err, repositories.ErrEmailTaken)
	})

	t.Run("short password rejected", func(t *testing.T) {
		_, _, err := service.Register(RegisterInput{
			Name:     "Weak",
			Email:    "weak@example.com",
			Password: "short",
		})
		assert.Error(t, err)
	})
}

func TestUserServiceAuthenticate(t *testing.T) {
	service := NewUserService(mock.NewUserRepository(), testSecret)
	registered, _, err := service.Register(RegisterInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, token, err := service.Authenticate(LoginInput{Email: "Asha@Example.com", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := service.Authenticate(LoginInput{Email: "asha@example.com", Password: "wrong-pass"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := service.Authenticate(LoginInput{Email: "nobody@example.com", Password: "s3cret-pass"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
