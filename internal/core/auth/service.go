package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"Postline/internal/core/users"
)

type authService struct {
	userRepo    users.Repository
	sessionRepo SessionRepository
	secret      string
}

// NewAuthService creates a new authentication service. The secret feeds
// token minting and must be stable for the process lifetime.
func NewAuthService(userRepo users.Repository, sessionRepo SessionRepository, secret string) Service {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		secret:      secret,
	}
}

// Register creates the user row, then mints and persists a session token so
// the client is logged in immediately.
func (s *authService) Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := validateRegisterRequest(req); err != nil {
		return nil, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, &users.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		// users.ErrDuplicateEmail passes through untouched
		return nil, err
	}

	return s.mintSession(ctx, user.ID)
}

// Login verifies the password against the stored "salt$hash" value and
// mints a fresh token. Missing user and bad password are indistinguishable
// to the caller.
func (s *authService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !VerifyPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.mintSession(ctx, user.ID)
}

// ResolveSession maps a bearer token to its owning user.
func (s *authService) ResolveSession(ctx context.Context, token string) (*users.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	user, err := s.sessionRepo.GetUserByToken(ctx, token)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	return user, nil
}

func (s *authService) mintSession(ctx context.Context, userID int64) (*TokenResponse, error) {
	token, err := MintToken(userID, s.secret)
	if err != nil {
		return nil, err
	}

	if err := s.sessionRepo.Create(ctx, &Session{Token: token, UserID: userID}); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	return &TokenResponse{Token: token}, nil
}

func validateRegisterRequest(req RegisterRequest) error {
	if len(req.Name) < 1 || len(req.Name) > 100 {
		return &ValidationError{Field: "name", Reason: "must be 1-100 characters"}
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		return &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}

	if len(req.Password) < 6 || len(req.Password) > 128 {
		return &ValidationError{Field: "password", Reason: "must be 6-128 characters"}
	}

	return nil
}
