package service

import (
	"context"
	"testing"

	"vaul-ai-be/internal/dto"
	"vaul-ai-be/internal/repository/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (IAuthService, *fakeUserRepo) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	users := newFakeUserRepo()
	svc := NewAuthService(
		&fakeFactory{uow: &fakeUnitOfWork{users: users}},
		session.NewMemorySessionStore(),
	)
	return svc, users
}

func TestRegisterAndLogin(t *testing.T) {
	svc, users := newAuthFixture(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "a@example.com",
		Password: "hunter22",
		FullName: "Ada",
	})
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", reg.Email)

	// Passwords are never stored in the clear.
	stored := users.users[reg.Id]
	require.NotNil(t, stored)
	assert.NotEqual(t, "hunter22", stored.PasswordHash)

	res, err := svc.Login(ctx, &dto.LoginRequest{Email: "a@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Email: "a@example.com", Password: "hunter22", FullName: "Ada"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &dto.RegisterRequest{Email: "a@example.com", Password: "other", FullName: "Eve"})
	assert.ErrorContains(t, err, "already registered")
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Email: "a@example.com", Password: "hunter22", FullName: "Ada"})
	require.NoError(t, err)

	// Wrong password and unknown email must be indistinguishable.
	_, errPw := svc.Login(ctx, &dto.LoginRequest{Email: "a@example.com", Password: "wrong"})
	_, errEmail := svc.Login(ctx, &dto.LoginRequest{Email: "b@example.com", Password: "hunter22"})
	require.Error(t, errPw)
	require.Error(t, errEmail)
	assert.Equal(t, errPw.Error(), errEmail.Error())
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Email: "a@example.com", Password: "hunter22", FullName: "Ada"})
	require.NoError(t, err)
	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "a@example.com", Password: "hunter22"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, &dto.RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The old token is revoked on rotation.
	_, err = svc.Refresh(ctx, &dto.RefreshRequest{RefreshToken: login.RefreshToken})
	assert.Error(t, err)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Email: "a@example.com", Password: "hunter22", FullName: "Ada"})
	require.NoError(t, err)
	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "a@example.com", Password: "hunter22"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, login.RefreshToken))

	_, err = svc.Refresh(ctx, &dto.RefreshRequest{RefreshToken: login.RefreshToken})
	assert.Error(t, err)
}
