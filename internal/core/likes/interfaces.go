package likes

import "context"

// Repository defines the data access interface for likes
type Repository interface {
	// Create inserts a like row. A (post, user) duplicate returns
	// ErrAlreadyLiked, translated from the store's unique constraint.
	Create(ctx context.Context, like *Like) error

	// Delete removes the (post, user) like row if present. An absent row
	// is not an error.
	Delete(ctx context.Context, postID, userID int64) error
}

// Service defines the business logic interface for likes
type Service interface {
	// Like records that the user liked the post. Returns
	// posts.ErrPostNotFound for a missing post and ErrAlreadyLiked when
	// the row already exists; concurrent likers race at the constraint
	// and the loser gets ErrAlreadyLiked.
	Like(ctx context.Context, userID, postID int64) error

	// Unlike removes the user's like. Unliking a post that was never
	// liked succeeds silently.
	Unlike(ctx context.Context, userID, postID int64) error
}
