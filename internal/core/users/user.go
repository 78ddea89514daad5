package users

import (
	"time"
)

// User is the persisted account record. PasswordHash is stored as
// "salt$hash" and never leaves the service layer.
type User struct {
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	AvatarURL    *string   `json:"avatarUrl" db:"avatar_url"`
	ID           int64     `json:"id" db:"id"`
}

// UserView is the client-facing profile shape. It omits credentials.
type UserView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL *string   `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserView projects a User into its client-facing shape.
func NewUserView(u *User) *UserView {
	return &UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}
