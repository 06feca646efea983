package service

import (
	"context"
	"testing"
	"time"

	"github.com/wayfarerhq/accounts/internal/accounts/domain"
	"github.com/wayfarerhq/accounts/internal/accounts/store"
	"github.com/wayfarerhq/accounts/internal/accounts/store/drivers/sqlite"
	"github.com/wayfarerhq/accounts/pkg/jwtx"

	"github.com/stretchr/testify/require"
)

const testIssuer = "accounts-test"

func newTokenService(t *testing.T) (*TokenService, *UserService) {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	tokens := &TokenService{
		Store:   s,
		Refresh: jwtx.NewStrategy("refresh-secret", testIssuer),
		Access:  jwtx.NewStrategy("access-secret", testIssuer),
		Issuer:  testIssuer,
	}
	return tokens, &UserService{Store: s}
}

func createUser(t *testing.T, users *UserService, email, password string, admin bool) domain.User {
	t.Helper()

	u, err := users.Create(context.Background(), NewUser{
		Username: email,
		Email:    email,
		Password: password,
		Admin:    admin,
	})
	require.NoError(t, err)
	return u
}

func TestIssueRefreshToken(t *testing.T) {
	ctx := context.Background()
	tokens, users := newTokenService(t)
	u := createUser(t, users, "alice@example.com", "hunter2secret", false)

	token, err := tokens.IssueRefreshToken(ctx, "alice@example.com", "hunter2secret")
	require.NoError(t, err)

	claims, err := tokens.Refresh.Verify(token)
	require.NoError(t, err)
	require.Equal(t, []string{"refresh"}, claims.Scopes)
	require.Nil(t, claims.ExpiresAt)

	id, err := claims.SubjectID()
	require.NoError(t, err)
	require.Equal(t, u.ID, id)

	// The stored session marker matches the token's jti.
	stored, err := tokens.Store.Users().FindByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, stored.JTI, claims.ID)
}

func TestIssueRefreshTokenRejections(t *testing.T) {
	ctx := context.Background()
	tokens, users := newTokenService(t)
	createUser(t, users, "alice@example.com", "hunter2secret", false)

	_, err := tokens.IssueRefreshToken(ctx, "nobody@example.com", "hunter2secret")
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = tokens.IssueRefreshToken(ctx, "alice@example.com", "wrong")
	require.ErrorIs(t, err, ErrPasswordIncorrect)
}

func TestSecondLoginInvalidatesFirstRefreshToken(t *testing.T) {
	ctx := context.Background()
	tokens, users := newTokenService(t)
	createUser(t, users, "alice@example.com", "hunter2secret", false)

	first, err := tokens.IssueRefreshToken(ctx, "alice@example.com", "hunter2secret")
	require.NoError(t, err)
	second, err := tokens.IssueRefreshToken(ctx, "alice@example.com", "hunter2secret")
	require.NoError(t, err)

	firstClaims, err := tokens.Refresh.Verify(first)
	require.NoError(t, err)
	secondClaims, err := tokens.Refresh.Verify(second)
	require.NoError(t, err)

	_, err = tokens.IssueAccessToken(ctx, firstClaims)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = tokens.IssueAccessToken(ctx, secondClaims)
	require.NoError(t, err)
}

func TestIssueAccessToken(t *testing.T) {
	ctx := context.Background()
	tokens, users := newTokenService(t)
	u := createUser(t, users, "alice@example.com", "hunter2secret", false)

	refresh, err := tokens.IssueRefreshToken(ctx, "alice@example.com", "hunter2secret")
	require.NoError(t, err)
	claims, err := tokens.Refresh.Verify(refresh)
	require.NoError(t, err)

	access, err := tokens.IssueAccessToken(ctx, claims)
	require.NoError(t, err)

	accessClaims, err := tokens.Access.Verify(access)
	require.NoError(t, err)
	require.Equal(t, []string{domain.UserScope(u.ID)}, accessClaims.Scopes)
	require.NotNil(t, accessClaims.ExpiresAt)
	require.WithinDuration(t,
		time.Now().Add(jwtx.DefaultAccessTokenTTL), accessClaims.ExpiresAt.Time, time.Minute)

	// The two strategies hold independent secrets.
	_, err = tokens.Refresh.Verify(access)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	_, err = tokens.Access.Verify(refresh)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestIssueAccessTokenAdminScope(t *testing.T) {
	ctx := context.Background()
	tokens, users := newTokenService(t)
	u := createUser(t, users, "root@example.com", "hunter2secret", true)

	refresh, err := tokens.IssueRefreshToken(ctx, "root@example.com", "hunter2secret")
	require.NoError(t, err)
	claims, err := tokens.Refresh.Verify(refresh)
	require.NoError(t, err)

	access, err := tokens.IssueAccessToken(ctx, claims)
	require.NoError(t, err)

	accessClaims, err := tokens.Access.Verify(access)
	require.NoError(t, err)
	require.ElementsMatch(t,
		[]string{domain.UserScope(u.ID), domain.ScopeAdmin}, accessClaims.Scopes)
}

func TestRevokeInvalidatesRefreshToken(t *testing.T) {
	ctx := context.Background()
	tokens, users := newTokenService(t)
	u := createUser(t, users, "alice@example.com", "hunter2secret", false)

	refresh, err := tokens.IssueRefreshToken(ctx, "alice@example.com", "hunter2secret")
	require.NoError(t, err)
	claims, err := tokens.Refresh.Verify(refresh)
	require.NoError(t, err)

	require.NoError(t, tokens.Revoke(ctx, u.ID))

	// Signature still verifies; only the session check fails.
	_, err = tokens.Refresh.Verify(refresh)
	require.NoError(t, err)
	_, err = tokens.IssueAccessToken(ctx, claims)
	require.ErrorIs(t, err, ErrInvalidToken)

	require.ErrorIs(t, tokens.Revoke(ctx, u.ID+100), ErrUserNotFound)
}

// rotateRowsStore wraps a real store and forces RotateJTI to report a fixed
// affected-row count. The sqlite primary key makes the off-contract counts
// unreachable through the real driver.
type rotateRowsStore struct {
	store.Store
	rows int64
}

func (s *rotateRowsStore) Users() store.Users {
	return &rotateRowsUsers{Users: s.Store.Users(), rows: s.rows}
}

type rotateRowsUsers struct {
	store.Users
	rows int64
}

func (u *rotateRowsUsers) RotateJTI(ctx context.Context, id int64, jti string, activeOnly bool) (int64, error) {
	return u.rows, nil
}

func TestIssueRefreshTokenRowConflict(t *testing.T) {
	ctx := context.Background()
	tokens, users := newTokenService(t)
	createUser(t, users, "alice@example.com", "hunter2secret", false)

	// The account vanishing between the credential check and the marker
	// rotation is an inconsistency, not a missing user.
	tokens.Store = &rotateRowsStore{Store: tokens.Store, rows: 0}
	_, err := tokens.IssueRefreshToken(ctx, "alice@example.com", "hunter2secret")
	require.ErrorIs(t, err, ErrRowConflict)
}

func TestRotateJTIMultiRowConflict(t *testing.T) {
	ctx := context.Background()
	tokens, users := newTokenService(t)
	u := createUser(t, users, "alice@example.com", "hunter2secret", false)

	tokens.Store = &rotateRowsStore{Store: tokens.Store, rows: 2}

	require.ErrorIs(t, tokens.Revoke(ctx, u.ID), ErrRowConflict)

	_, err := tokens.IssueRefreshToken(ctx, "alice@example.com", "hunter2secret")
	require.ErrorIs(t, err, ErrRowConflict)
}

func TestDeactivatedUserCannotExchange(t *testing.T) {
	ctx := context.Background()
	tokens, users := newTokenService(t)
	u := createUser(t, users, "alice@example.com", "hunter2secret", false)

	refresh, err := tokens.IssueRefreshToken(ctx, "alice@example.com", "hunter2secret")
	require.NoError(t, err)
	claims, err := tokens.Refresh.Verify(refresh)
	require.NoError(t, err)

	require.NoError(t, users.Deactivate(ctx, u.ID))

	_, err = tokens.IssueAccessToken(ctx, claims)
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = tokens.IssueRefreshToken(ctx, "alice@example.com", "hunter2secret")
	require.ErrorIs(t, err, ErrUserNotFound)

	// Revocation still reaches the deactivated account.
	require.NoError(t, tokens.Revoke(ctx, u.ID))
}
