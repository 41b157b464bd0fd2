package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"hirehub-backend/internal/domain"
	"hirehub-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("empty id", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockUserRepo))
		_, err := uc.GetCurrentUser(ctx, "")
		assertStatus(t, err, http.StatusUnauthorized)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrNotFound)
		_, err := usecase.NewAuthUsecase(repo).GetCurrentUser(ctx, "ghost")
		assertStatus(t, err, http.StatusUnauthorized)
	})

	t.Run("db error", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByID", ctx, "u").Return(nil, errors.New("boom"))
		_, err := usecase.NewAuthUsecase(repo).GetCurrentUser(ctx, "u")
		assertStatus(t, err, http.StatusInternalServerError)
	})

	t.Run("role defaults to seeker", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByID", ctx, "u").Return(&domain.User{ID: "u", Username: "alice"}, nil)
		user, err := usecase.NewAuthUsecase(repo).GetCurrentUser(ctx, "u")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleSeeker, user.Role)
	})
}
