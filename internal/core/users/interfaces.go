package users

import "context"

// Repository defines the interface for user data persistence
type Repository interface {
	// Create inserts a new user. Returns ErrDuplicateEmail if the
	// (lowercase) email is already taken.
	Create(ctx context.Context, user *User) (*User, error)

	// GetByID retrieves a user by id. Returns ErrUserNotFound on miss.
	GetByID(ctx context.Context, id int64) (*User, error)

	// GetByEmail retrieves a user by lowercase-normalized email.
	// Returns ErrUserNotFound on miss.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// UpdateAvatar replaces the user's avatar URL and returns the
	// refreshed record.
	UpdateAvatar(ctx context.Context, id int64, avatarURL string) (*User, error)
}

// Service defines the business logic interface for user profiles
type Service interface {
	// Me returns the viewer's own profile.
	Me(ctx context.Context, userID int64) (*UserView, error)

	// UpdateAvatar validates and stores an uploaded avatar image, updates
	// the user's avatar URL and writes a media audit row.
	UpdateAvatar(ctx context.Context, user *User, data []byte, filename string) (*UserView, error)
}
