package auth

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned on login when the email or
	// password is wrong. Deliberately generic: the response must not
	// reveal which field failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthenticated is returned when a bearer token is missing or
	// does not resolve to a session
	ErrUnauthenticated = errors.New("authentication required")
)

// ValidationError describes malformed registration input, rejected before
// any store access.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
