package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/wayfarerhq/accounts/internal/accounts/domain"
)

type usersRepo struct {
	db *sql.DB
}

const userColumns = `id, username, email, display_name, password_hash, salt, jti, active, admin, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.DisplayName,
		&u.PasswordHash,
		&u.Salt,
		&u.JTI,
		&u.Active,
		&u.Admin,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) FindByID(ctx context.Context, id int64) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) FindActiveByID(ctx context.Context, id int64) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ? AND active = 1`, id)
	return scanUser(row)
}

func (r *usersRepo) FindActiveByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ? AND active = 1`, email)
	return scanUser(row)
}

func (r *usersRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, email, display_name, password_hash, salt, jti, active, admin)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.Username, u.Email, u.DisplayName, u.PasswordHash, u.Salt, u.JTI, u.Active, u.Admin)
	if err != nil {
		return domain.User{}, mapConstraint(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}
	return r.FindByID(ctx, id)
}

func (r *usersRepo) RotateJTI(ctx context.Context, id int64, jti string, activeOnly bool) (int64, error) {
	query := `UPDATE users SET jti = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	if activeOnly {
		query += ` AND active = 1`
	}

	res, err := r.db.ExecContext(ctx, query, jti, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *usersRepo) UpdateCredentials(ctx context.Context, id int64, passwordHash, salt, jti string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, salt = ?, jti = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		passwordHash, salt, jti, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *usersRepo) UpdateProfile(ctx context.Context, id int64, p domain.Profile) (domain.User, int64, error) {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)

	if p.Username != nil {
		sets = append(sets, "username = ?")
		args = append(args, *p.Username)
	}
	if p.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *p.Email)
	}
	if p.DisplayName != nil {
		sets = append(sets, "display_name = ?")
		args = append(args, *p.DisplayName)
	}
	if len(sets) == 0 {
		u, err := r.FindActiveByID(ctx, id)
		if err != nil {
			return domain.User{}, 0, err
		}
		return u, 1, nil
	}

	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET `+strings.Join(sets, ", ")+` WHERE id = ? AND active = 1`, args...)
	if err != nil {
		return domain.User{}, 0, mapConstraint(err)
	}

	rows, err := res.RowsAffected()
	if err != nil || rows == 0 {
		return domain.User{}, rows, err
	}

	u, err := r.FindByID(ctx, id)
	return u, rows, err
}

func (r *usersRepo) Deactivate(ctx context.Context, id int64, jti string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET active = 0, jti = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND active = 1`,
		jti, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
