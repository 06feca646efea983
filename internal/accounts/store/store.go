package store

import (
	"context"
	"errors"

	"github.com/wayfarerhq/accounts/internal/accounts/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// postgres later) implement this. The services depend only on this contract,
// never on a storage engine.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Users is the user-record repository. Mutating methods report the number
// of rows affected so callers can enforce the exactly-one-row contract:
// updates are single-row last-write-wins, and anything other than one
// affected row is surfaced, never swallowed.
type Users interface {
	// FindByID returns a user by id regardless of the active flag.
	// Revocation and admin resets must reach deactivated accounts too.
	FindByID(ctx context.Context, id int64) (domain.User, error)

	// FindActiveByID returns an active user by id.
	FindActiveByID(ctx context.Context, id int64) (domain.User, error)

	// FindActiveByEmail is the credential-check lookup: inactive users are
	// invisible to authentication.
	FindActiveByEmail(ctx context.Context, email string) (domain.User, error)

	// Create inserts a new user and returns it with the assigned id.
	// Unique-constraint violations map to ErrAlreadyExists.
	Create(ctx context.Context, u domain.User) (domain.User, error)

	// RotateJTI overwrites the session marker. With activeOnly set the
	// update only reaches active rows (login path); without it, any row
	// (revocation path).
	RotateJTI(ctx context.Context, id int64, jti string, activeOnly bool) (int64, error)

	// UpdateCredentials replaces hash, salt and session marker in one
	// write (password change and reset).
	UpdateCredentials(ctx context.Context, id int64, passwordHash, salt, jti string) (int64, error)

	// UpdateProfile applies the non-nil profile fields and returns the
	// updated record.
	UpdateProfile(ctx context.Context, id int64, p domain.Profile) (domain.User, int64, error)

	// Deactivate soft-deletes the user and rotates the session marker so
	// outstanding refresh tokens die with the account.
	Deactivate(ctx context.Context, id int64, jti string) (int64, error)
}
