package likes

import "errors"

// ErrAlreadyLiked indicates the user has already liked this post. A second
// like attempt is an error, not a no-op; unliking is the idempotent side.
var ErrAlreadyLiked = errors.New("post already liked")
