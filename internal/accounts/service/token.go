package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/wayfarerhq/accounts/internal/accounts/domain"
	"github.com/wayfarerhq/accounts/internal/accounts/store"
	"github.com/wayfarerhq/accounts/pkg/cryptox"
	"github.com/wayfarerhq/accounts/pkg/idx"
	"github.com/wayfarerhq/accounts/pkg/jwtx"
	"github.com/wayfarerhq/accounts/pkg/slogx"
)

var (
	ErrUserNotFound      = errors.New("user_not_found")
	ErrPasswordIncorrect = errors.New("password_incorrect")
	ErrInvalidToken      = errors.New("invalid_token")

	// ErrRowConflict means an update touched a row count other than
	// exactly one. The write may be partially applied, so callers must
	// treat it as a server fault rather than a domain outcome.
	ErrRowConflict = errors.New("row_conflict")
)

// Session is the validated identity behind a live refresh token.
type Session struct {
	UserID int64
	Scopes []string
}

type TokenService struct {
	Store     store.Store
	Refresh   *jwtx.Strategy
	Access    *jwtx.Strategy
	Issuer    string
	AccessTTL time.Duration
}

func (s *TokenService) accessTTL() time.Duration {
	if s.AccessTTL > 0 {
		return s.AccessTTL
	}
	return jwtx.DefaultAccessTokenTTL
}

// IssueRefreshToken authenticates the credentials and mints a refresh token
// carrying a fresh session marker. Rotating the marker on every login means
// a successful login invalidates every refresh token issued before it.
func (s *TokenService) IssueRefreshToken(ctx context.Context, email, password string) (string, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().FindActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	if !cryptox.VerifyPassword(password, user.PasswordHash, user.Salt) {
		l.Info("refresh token issuance rejected", slog.Int64("user_id", user.ID))
		return "", ErrPasswordIncorrect
	}

	jti := idx.New()
	rows, err := s.Store.Users().RotateJTI(ctx, user.ID, jti, true)
	if err != nil {
		return "", err
	}
	// The active lookup just succeeded, so anything but exactly one row
	// here means the account state changed under us. That is a server
	// fault, not a missing user.
	if rows != 1 {
		return "", ErrRowConflict
	}

	token, err := s.Refresh.Sign(jwtx.NewRefreshClaims(user.ID, jti, s.Issuer, time.Now()))
	if err != nil {
		return "", err
	}

	l.Info("refresh token issued", slog.Int64("user_id", user.ID))
	return token, nil
}

// ValidateSession checks already-verified refresh claims against the stored
// account state. The signature only proves the token was once minted; the
// session marker comparison proves it is still the latest one. Scopes are
// derived from current state, never from the token.
func (s *TokenService) ValidateSession(ctx context.Context, claims jwtx.Claims) (Session, error) {
	userID, err := claims.SubjectID()
	if err != nil {
		return Session{}, ErrInvalidToken
	}

	user, err := s.Store.Users().FindActiveByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Session{}, ErrUserNotFound
		}
		return Session{}, err
	}

	if claims.ID == "" || claims.ID != user.JTI {
		return Session{}, ErrInvalidToken
	}

	scopes := []string{domain.UserScope(user.ID)}
	if user.Admin {
		scopes = append(scopes, domain.ScopeAdmin)
	}

	return Session{UserID: user.ID, Scopes: scopes}, nil
}

// IssueAccessToken exchanges live refresh claims for a short-lived access
// token scoped to the user's current permissions.
func (s *TokenService) IssueAccessToken(ctx context.Context, claims jwtx.Claims) (string, error) {
	sess, err := s.ValidateSession(ctx, claims)
	if err != nil {
		return "", err
	}

	return s.Access.Sign(jwtx.NewAccessClaims(sess.UserID, sess.Scopes, s.accessTTL(), s.Issuer, time.Now()))
}

// Revoke rotates the user's session marker, killing every outstanding
// refresh token at once. It reaches deactivated accounts too: revocation
// must always be possible.
func (s *TokenService) Revoke(ctx context.Context, userID int64) error {
	rows, err := s.Store.Users().RotateJTI(ctx, userID, idx.New(), false)
	if err != nil {
		return err
	}
	if err := oneRow(rows); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("refresh tokens revoked", slog.Int64("user_id", userID))
	return nil
}

// oneRow enforces the exactly-one-row update contract.
func oneRow(rows int64) error {
	switch {
	case rows == 0:
		return ErrUserNotFound
	case rows > 1:
		return ErrRowConflict
	default:
		return nil
	}
}
