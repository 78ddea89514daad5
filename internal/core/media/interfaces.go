package media

import "context"

// Repository defines the interface for media audit row persistence
type Repository interface {
	// Create inserts a media audit row for an uploaded blob.
	Create(ctx context.Context, m *Media) (*Media, error)

	// DeleteByOwner removes all audit rows for one owner. Used when a
	// post is deleted; there is no FK across the polymorphic owner
	// columns, so the cleanup is explicit.
	DeleteByOwner(ctx context.Context, ownerType string, ownerID int64) error
}
