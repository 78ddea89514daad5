package comments

import (
	"context"

	"Postline/internal/core/users"
)

// Repository defines the data access interface for comments
type Repository interface {
	// Create inserts a new comment and returns it with id and timestamp set.
	Create(ctx context.Context, comment *Comment) (*Comment, error)

	// ListByPost retrieves hydrated comment views for a post,
	// oldest-first.
	ListByPost(ctx context.Context, postID int64) ([]*CommentView, error)
}

// Service defines the business logic interface for comments
type Service interface {
	// Add creates a comment on an existing post. Any authenticated user
	// may comment; returns posts.ErrPostNotFound if the post is missing.
	// The returned view denormalizes the author's name and avatar as of
	// creation time.
	Add(ctx context.Context, author *users.User, postID int64, text string) (*CommentView, error)

	// ListForPost retrieves a post's comments oldest-first.
	ListForPost(ctx context.Context, postID int64) ([]*CommentView, error)
}
