package auth

import (
	"context"

	"Postline/internal/core/users"
)

// SessionRepository defines the interface for session persistence
type SessionRepository interface {
	// Create persists a freshly minted session token.
	Create(ctx context.Context, session *Session) error

	// GetUserByToken resolves a token to its owning user via a
	// sessions-users join. Returns users.ErrUserNotFound on miss.
	GetUserByToken(ctx context.Context, token string) (*users.User, error)
}

// Service defines the authentication business logic
type Service interface {
	// Register creates a user and immediately mints a session token.
	// Input violations return a ValidationError before any store access;
	// a taken email returns users.ErrDuplicateEmail.
	Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error)

	// Login verifies credentials and mints a new token. Prior sessions
	// stay valid. Any mismatch returns ErrInvalidCredentials.
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)

	// ResolveSession maps a bearer token to its user. Empty or unknown
	// tokens return ErrUnauthenticated.
	ResolveSession(ctx context.Context, token string) (*users.User, error)
}
