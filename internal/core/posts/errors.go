package posts

import (
	"errors"
	"fmt"
)

var (
	// ErrPostNotFound indicates the requested post doesn't exist
	ErrPostNotFound = errors.New("post not found")

	// ErrNotPostAuthor indicates the caller is not the post's author.
	// Only authors may update or delete their posts.
	ErrNotPostAuthor = errors.New("not the post author")
)

// ValidationError describes malformed post input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid post: %s", e.Reason)
}

// IsValidationError reports whether err is a post ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
