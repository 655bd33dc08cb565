package service_test

import (
	"context"
	"testing"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/security"
	"carrental-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager("0123456789abcdef0123456789abcdef", time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	assert.NoError(t, err)
	user := &domain.User{
		ID:           1,
		Kind:         domain.UserKindClient,
		Login:        "jdoe",
		PasswordHash: string(hash),
		Roles:        []string{domain.RoleUser},
	}

	t.Run("valid credentials return a verifiable token", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByLogin", ctx, "jdoe").Return(user, nil)
		svc := service.NewAuthService(userRepo, tokens)

		token, got, err := svc.Login(ctx, "jdoe", "hunter22")
		assert.NoError(t, err)
		assert.Equal(t, user, got)

		claims, err := tokens.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), claims.UserID)
		assert.Equal(t, "jdoe", claims.Login)
		assert.Equal(t, []string{domain.RoleUser}, claims.Roles)
	})

	t.Run("wrong password fails", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByLogin", ctx, "jdoe").Return(user, nil)
		svc := service.NewAuthService(userRepo, tokens)

		_, _, err := svc.Login(ctx, "jdoe", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown login fails the same way", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByLogin", ctx, "ghost").Return(nil, repository.ErrNotFound)
		svc := service.NewAuthService(userRepo, tokens)

		_, _, err := svc.Login(ctx, "ghost", "whatever")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestTokenManager_Expiry(t *testing.T) {
	tokens := security.NewTokenManager("0123456789abcdef0123456789abcdef", -time.Minute)
	token, err := tokens.GenerateAccessToken(1, "jdoe", nil)
	assert.NoError(t, err)

	_, err = tokens.ValidateToken(token)
	assert.ErrorIs(t, err, security.ErrExpiredToken)
}
