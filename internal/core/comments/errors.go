package comments

import (
	"errors"
	"fmt"
)

// ValidationError describes malformed comment input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid comment: %s", e.Reason)
}

// IsValidationError reports whether err is a comment ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
