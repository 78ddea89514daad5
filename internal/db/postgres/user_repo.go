package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"Postline/internal/core/users"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.Repository {
	return &postgresUserRepo{db: db}
}

// Create inserts a new user into the users table
func (r *postgresUserRepo) Create(ctx context.Context, user *users.User) (*users.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, user.Name, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "users_email_key") {
			return nil, users.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by id
func (r *postgresUserRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	return r.getOne(ctx, `SELECT id, name, email, password_hash, avatar_url, created_at FROM users WHERE id = $1`, id)
}

// GetByEmail retrieves a user by lowercase-normalized email
func (r *postgresUserRepo) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	return r.getOne(ctx, `SELECT id, name, email, password_hash, avatar_url, created_at FROM users WHERE email = $1`, email)
}

// UpdateAvatar replaces the user's avatar URL and returns the fresh record
func (r *postgresUserRepo) UpdateAvatar(ctx context.Context, id int64, avatarURL string) (*users.User, error) {
	query := `
		UPDATE users SET avatar_url = $1
		WHERE id = $2
		RETURNING id, name, email, password_hash, avatar_url, created_at`

	user := &users.User{}
	var avatar sql.NullString

	err := r.db.QueryRowContext(ctx, query, avatarURL, id).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &avatar, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update avatar: %w", err)
	}

	if avatar.Valid {
		user.AvatarURL = &avatar.String
	}

	return user, nil
}

func (r *postgresUserRepo) getOne(ctx context.Context, query string, arg any) (*users.User, error) {
	user := &users.User{}
	var avatar sql.NullString

	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &avatar, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if avatar.Valid {
		user.AvatarURL = &avatar.String
	}

	return user, nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation on the named constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == "23505" && pqErr.Constraint == constraint
}
