package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Postline/internal/core/auth"
	"Postline/internal/core/users"
)

type postgresSessionRepo struct {
	db *sql.DB
}

// NewSessionRepository creates a new PostgreSQL session repository
func NewSessionRepository(db *sql.DB) auth.SessionRepository {
	return &postgresSessionRepo{db: db}
}

// Create persists a freshly minted session token
func (r *postgresSessionRepo) Create(ctx context.Context, session *auth.Session) error {
	query := `
		INSERT INTO sessions (token, user_id)
		VALUES ($1, $2)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query, session.Token, session.UserID).
		Scan(&session.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// GetUserByToken resolves a bearer token to its owning user in one join
// lookup; this runs on every authenticated request.
func (r *postgresSessionRepo) GetUserByToken(ctx context.Context, token string) (*users.User, error) {
	query := `
		SELECT u.id, u.name, u.email, u.password_hash, u.avatar_url, u.created_at
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.token = $1`

	user := &users.User{}
	var avatar sql.NullString

	err := r.db.QueryRowContext(ctx, query, token).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &avatar, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session token: %w", err)
	}

	if avatar.Valid {
		user.AvatarURL = &avatar.String
	}

	return user, nil
}
