package auth

import "time"

// Session maps an opaque bearer token to its owning user. A user may hold
// any number of live sessions; there is no expiry column - cleanup is an
// operational concern outside the API.
type Session struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Token     string    `json:"token" db:"token"`
	UserID    int64     `json:"userId" db:"user_id"`
}

// RegisterRequest is the input for creating a new account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the input for authenticating an existing account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries a freshly minted session token back to the client.
type TokenResponse struct {
	Token string `json:"token"`
}
