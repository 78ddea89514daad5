package users

import "errors"

var (
	// ErrUserNotFound is returned when a user lookup finds no matching record
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when registering an email that is already taken.
	// Emails are compared case-insensitively (stored lowercase).
	ErrDuplicateEmail = errors.New("email already in use")
)
