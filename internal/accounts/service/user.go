package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/wayfarerhq/accounts/internal/accounts/domain"
	"github.com/wayfarerhq/accounts/internal/accounts/store"
	"github.com/wayfarerhq/accounts/pkg/cryptox"
	"github.com/wayfarerhq/accounts/pkg/idx"
	"github.com/wayfarerhq/accounts/pkg/slogx"
)

var (
	ErrAccountExists   = errors.New("account_exists")
	ErrOldPasswordUsed = errors.New("old_password_used")
)

type UserService struct {
	Store store.Store
}

// NewUser carries the validated fields for account creation.
type NewUser struct {
	Username    string
	Email       string
	DisplayName string
	Password    string
	Admin       bool
}

// Create inserts a new account with a freshly salted password digest and an
// initial session marker.
func (s *UserService) Create(ctx context.Context, n NewUser) (domain.User, error) {
	salt := cryptox.NewSalt()

	user, err := s.Store.Users().Create(ctx, domain.User{
		Username:     n.Username,
		Email:        n.Email,
		DisplayName:  n.DisplayName,
		PasswordHash: cryptox.HashPassword(n.Password, salt),
		Salt:         salt,
		JTI:          idx.New(),
		Active:       true,
		Admin:        n.Admin,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrAccountExists
		}
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("account created", slog.Int64("user_id", user.ID))
	return user, nil
}

// Get fetches an active user by id.
func (s *UserService) Get(ctx context.Context, id int64) (domain.User, error) {
	user, err := s.Store.Users().FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// UpdateProfile applies a partial profile update to an active user.
func (s *UserService) UpdateProfile(ctx context.Context, id int64, p domain.Profile) (domain.User, error) {
	user, rows, err := s.Store.Users().UpdateProfile(ctx, id, p)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrAccountExists
		}
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	if err := oneRow(rows); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// Deactivate soft-deletes the account and rotates its session marker so
// outstanding refresh tokens stop working immediately.
func (s *UserService) Deactivate(ctx context.Context, id int64) error {
	rows, err := s.Store.Users().Deactivate(ctx, id, idx.New())
	if err != nil {
		return err
	}
	if err := oneRow(rows); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("account deactivated", slog.Int64("user_id", id))
	return nil
}

// UpdatePassword replaces the password after checking the old one. The new
// password must differ from the current one, and both the salt and session
// marker are regenerated so the digest and all refresh tokens change even
// for related passwords.
func (s *UserService) UpdatePassword(ctx context.Context, id int64, oldPassword, newPassword string) error {
	user, err := s.Store.Users().FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if !cryptox.VerifyPassword(oldPassword, user.PasswordHash, user.Salt) {
		return ErrPasswordIncorrect
	}
	if cryptox.VerifyPassword(newPassword, user.PasswordHash, user.Salt) {
		return ErrOldPasswordUsed
	}

	salt := cryptox.NewSalt()
	rows, err := s.Store.Users().UpdateCredentials(ctx, id,
		cryptox.HashPassword(newPassword, salt), salt, idx.New())
	if err != nil {
		return err
	}
	if err := oneRow(rows); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("password updated", slog.Int64("user_id", id))
	return nil
}

// ResetPassword generates a new random password for the user and returns
// it. Admin-driven, so no old password is required and deactivated accounts
// are reachable.
func (s *UserService) ResetPassword(ctx context.Context, id int64) (string, error) {
	if _, err := s.Store.Users().FindByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	password, err := cryptox.GeneratePassword()
	if err != nil {
		return "", err
	}

	salt := cryptox.NewSalt()
	rows, err := s.Store.Users().UpdateCredentials(ctx, id,
		cryptox.HashPassword(password, salt), salt, idx.New())
	if err != nil {
		return "", err
	}
	if err := oneRow(rows); err != nil {
		return "", err
	}

	slogx.FromContext(ctx).Info("password reset", slog.Int64("user_id", id))
	return password, nil
}
