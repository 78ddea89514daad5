package posts

import "context"

// Repository defines the data access interface for posts
type Repository interface {
	// Create inserts a new post and returns it with id and timestamps set.
	Create(ctx context.Context, post *Post) (*Post, error)

	// GetByID retrieves the bare post row, used for ownership checks.
	// Returns ErrPostNotFound on miss.
	GetByID(ctx context.Context, id int64) (*Post, error)

	// Update persists text, image URL and the refreshed updated_at stamp.
	Update(ctx context.Context, post *Post) error

	// Delete removes the post; comments and likes cascade at the store.
	// Returns ErrPostNotFound if the row is already gone.
	Delete(ctx context.Context, id int64) error

	// GetView retrieves a hydrated post view. likedByMe is computed for
	// viewerID, or false when viewerID is zero (anonymous).
	GetView(ctx context.Context, id, viewerID int64) (*PostView, error)

	// ListFeed retrieves hydrated views newest-first. limit/offset are
	// assumed pre-clamped by the service.
	ListFeed(ctx context.Context, limit, offset int, viewerID int64) ([]*PostView, error)
}

// Service defines the business logic interface for the post lifecycle
type Service interface {
	// Create validates the text, stores an attached image if present and
	// returns the hydrated view.
	Create(ctx context.Context, authorID int64, req CreatePostRequest) (*PostView, error)

	// Update edits an existing post. Returns ErrPostNotFound or
	// ErrNotPostAuthor before touching anything; always re-stamps
	// updated_at on success.
	Update(ctx context.Context, authorID, postID int64, req UpdatePostRequest) (*PostView, error)

	// Delete removes the caller's own post along with its comments,
	// likes and media audit rows.
	Delete(ctx context.Context, authorID, postID int64) error

	// Get retrieves a hydrated post view. viewerID zero means anonymous.
	// The comment list is composed at the handler from the comments
	// service.
	Get(ctx context.Context, postID, viewerID int64) (*PostView, error)

	// ListFeed returns hydrated views newest-first with limit clamped to
	// [1,50] (default 20) and offset clamped to >= 0.
	ListFeed(ctx context.Context, req FeedRequest) ([]*PostView, error)
}
