package media

import "time"

// Owner type tags for media audit rows.
const (
	OwnerUser = "user"
	OwnerPost = "post"
)

// TypeImage is the only media type the upload surface accepts today.
const TypeImage = "image"

// Media is an audit record for an uploaded blob. The owning row (user or
// post) stores its own URL column; these rows exist for reference, not
// rendering.
type Media struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	OwnerType string    `json:"ownerType" db:"owner_type"`
	URL       string    `json:"url" db:"url"`
	Type      string    `json:"type" db:"type"`
	OwnerID   int64     `json:"ownerId" db:"owner_id"`
	ID        int64     `json:"id" db:"id"`
}
