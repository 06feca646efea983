package service

import (
	"context"
	"testing"

	"github.com/wayfarerhq/accounts/internal/accounts/domain"

	"github.com/stretchr/testify/require"
)

func TestUserCreate(t *testing.T) {
	ctx := context.Background()
	_, users := newTokenService(t)

	u, err := users.Create(ctx, NewUser{
		Username:    "alice",
		Email:       "alice@example.com",
		DisplayName: "Alice",
		Password:    "hunter2secret",
	})
	require.NoError(t, err)
	require.NotZero(t, u.ID)
	require.True(t, u.Active)
	require.NotEmpty(t, u.Salt)
	require.NotEmpty(t, u.JTI)
	require.NotEqual(t, "hunter2secret", u.PasswordHash)

	_, err = users.Create(ctx, NewUser{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "hunter2secret",
	})
	require.ErrorIs(t, err, ErrAccountExists)
}

func TestUserGet(t *testing.T) {
	ctx := context.Background()
	_, users := newTokenService(t)
	u := createUser(t, users, "alice@example.com", "hunter2secret", false)

	got, err := users.Get(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, got.Email)

	_, err = users.Get(ctx, u.ID+100)
	require.ErrorIs(t, err, ErrUserNotFound)

	require.NoError(t, users.Deactivate(ctx, u.ID))
	_, err = users.Get(ctx, u.ID)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserUpdateProfile(t *testing.T) {
	ctx := context.Background()
	_, users := newTokenService(t)
	u := createUser(t, users, "alice@example.com", "hunter2secret", false)

	name := "Alice A."
	got, err := users.UpdateProfile(ctx, u.ID, domain.Profile{DisplayName: &name})
	require.NoError(t, err)
	require.Equal(t, name, got.DisplayName)

	_, err = users.UpdateProfile(ctx, u.ID+100, domain.Profile{DisplayName: &name})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserUpdatePassword(t *testing.T) {
	ctx := context.Background()
	tokens, users := newTokenService(t)
	u := createUser(t, users, "alice@example.com", "hunter2secret", false)

	before, err := users.Get(ctx, u.ID)
	require.NoError(t, err)

	err = users.UpdatePassword(ctx, u.ID, "wrong", "newpassword123")
	require.ErrorIs(t, err, ErrPasswordIncorrect)

	err = users.UpdatePassword(ctx, u.ID, "hunter2secret", "hunter2secret")
	require.ErrorIs(t, err, ErrOldPasswordUsed)

	require.NoError(t, users.UpdatePassword(ctx, u.ID, "hunter2secret", "newpassword123"))

	after, err := users.Get(ctx, u.ID)
	require.NoError(t, err)
	require.NotEqual(t, before.Salt, after.Salt)
	require.NotEqual(t, before.JTI, after.JTI)
	require.NotEqual(t, before.PasswordHash, after.PasswordHash)

	// Old credentials stop working, new ones authenticate.
	_, err = tokens.IssueRefreshToken(ctx, "alice@example.com", "hunter2secret")
	require.ErrorIs(t, err, ErrPasswordIncorrect)
	_, err = tokens.IssueRefreshToken(ctx, "alice@example.com", "newpassword123")
	require.NoError(t, err)
}

func TestUserResetPassword(t *testing.T) {
	ctx := context.Background()
	tokens, users := newTokenService(t)
	u := createUser(t, users, "alice@example.com", "hunter2secret", false)

	generated, err := users.ResetPassword(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, generated, 12)

	_, err = tokens.IssueRefreshToken(ctx, "alice@example.com", "hunter2secret")
	require.ErrorIs(t, err, ErrPasswordIncorrect)
	_, err = tokens.IssueRefreshToken(ctx, "alice@example.com", generated)
	require.NoError(t, err)

	_, err = users.ResetPassword(ctx, u.ID+100)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserResetPasswordReachesDeactivated(t *testing.T) {
	ctx := context.Background()
	_, users := newTokenService(t)
	u := createUser(t, users, "alice@example.com", "hunter2secret", false)

	require.NoError(t, users.Deactivate(ctx, u.ID))

	_, err := users.ResetPassword(ctx, u.ID)
	require.NoError(t, err)
}
