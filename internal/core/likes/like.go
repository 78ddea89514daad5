package likes

import "time"

// Like marks that a user liked a post. At most one row exists per
// (post, user); the store enforces the uniqueness.
type Like struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"postId" db:"post_id"`
	UserID    int64     `json:"userId" db:"user_id"`
}
