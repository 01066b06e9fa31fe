// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"

	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/sweetshop-backend/internal/adapter/postgres"
	"github.com/heartmarshall/sweetshop-backend/internal/domain"
)

const userColumns = `id, username, email, password_hash, is_admin, created_at, updated_at`

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash, is_admin)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+userColumns,
		u.Username, u.Email, u.PasswordHash, u.IsAdmin,
	)

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}
	return created, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, id, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail returns a user by exact email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, email, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// GetByUsername returns a user by exact username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, username, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

// GetByEmailOrUsername returns any user holding either the email or the username.
func (r *Repo) GetByEmailOrUsername(ctx context.Context, email, username string) (*domain.User, error) {
	return r.getOne(ctx, email,
		`SELECT `+userColumns+` FROM users WHERE email = $1 OR username = $2 ORDER BY id LIMIT 1`,
		email, username,
	)
}

// SetAdmin sets the admin flag of the user with the given email.
func (r *Repo) SetAdmin(ctx context.Context, email string, isAdmin bool) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx,
		`UPDATE users SET is_admin = $2 WHERE email = $1 RETURNING `+userColumns,
		email, isAdmin,
	)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

func (r *Repo) getOne(ctx context.Context, key any, sql string, args ...any) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", key)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
