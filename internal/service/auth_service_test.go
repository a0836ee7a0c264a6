package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/fridge_chef_server/internal/model/dto"
	"github.com/qs3c/fridge_chef_server/internal/pkg/errcode"
	"github.com/qs3c/fridge_chef_server/internal/pkg/jwt"
)

func setupAuthService(t *testing.T) *AuthService {
	t.Helper()
	env := setupEnv(t, false)
	return NewAuthService(env.userRepo, env.cfg)
}

func TestAuthService_Register_Success(t *testing.T) {
	service := setupAuthService(t)

	resp, err := service.Register(&dto.RegisterRequest{
		Email:    "cook@example.com",
		Username: "cook",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.UserID)
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	service := setupAuthService(t)

	_, err := service.Register(&dto.RegisterRequest{Email: "dup@example.com", Username: "user1", Password: "password123"})
	require.NoError(t, err)

	_, err = service.Register(&dto.RegisterRequest{Email: "dup@example.com", Username: "user2", Password: "password123"})
	assert.ErrorIs(t, err, ErrEmailExists)
	assert.Equal(t, errcode.KindConflict, errcode.KindOf(err))

	_, err = service.Register(&dto.RegisterRequest{Email: "other@example.com", Username: "user1", Password: "password123"})
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestAuthService_Login(t *testing.T) {
	service := setupAuthService(t)

	reg, err := service.Register(&dto.RegisterRequest{Email: "login@example.com", Username: "login", Password: "password123"})
	require.NoError(t, err)

	resp, err := service.Login(&dto.LoginRequest{Email: "login@example.com", Password: "password123"})
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.Equal(t, "login@example.com", resp.User.Email)

	claims, err := jwt.ParseToken(resp.Token, "test-secret-key-for-testing")
	require.NoError(t, err)
	assert.Equal(t, reg.UserID, claims.UserID)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	service := setupAuthService(t)

	_, err := service.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Register(&dto.RegisterRequest{Email: "wrong@example.com", Username: "wrong", Password: "password123"})
	require.NoError(t, err)

	_, err = service.Login(&dto.LoginRequest{Email: "wrong@example.com", Password: "not-the-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, errcode.KindUnauthorized, errcode.KindOf(err))
}
