package posts

import "time"

// Post is the persisted post row. Views are hydrated separately with
// author fields and aggregate counts.
type Post struct {
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt *time.Time `json:"updatedAt" db:"updated_at"`
	Text      string     `json:"text" db:"text"`
	ImageURL  *string    `json:"imageUrl" db:"image_url"`
	ID        int64      `json:"id" db:"id"`
	AuthorID  int64      `json:"authorId" db:"author_id"`
}

// PostView is a post hydrated for the client: joined author fields plus
// like/comment counts computed fresh per request, never cached.
type PostView struct {
	ID              int64      `json:"id"`
	AuthorID        int64      `json:"author_id"`
	AuthorName      string     `json:"author_name"`
	AuthorAvatarURL *string    `json:"author_avatar_url"`
	Text            string     `json:"text"`
	ImageURL        *string    `json:"image_url"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
	LikesCount      int        `json:"likes_count"`
	CommentsCount   int        `json:"comments_count"`
	LikedByMe       bool       `json:"liked_by_me"`
}

// ImageUpload is an optional image attached to a create/update request.
type ImageUpload struct {
	Filename string
	Data     []byte
}

// CreatePostRequest is the input for creating a post.
type CreatePostRequest struct {
	Text  string
	Image *ImageUpload
}

// UpdatePostRequest is the input for editing a post. Image precedence: a
// new image wins over RemoveImage; with neither set the URL is unchanged.
type UpdatePostRequest struct {
	Text        string
	Image       *ImageUpload
	RemoveImage bool
}

// FeedRequest is the input for listing the feed. ViewerID is zero for
// anonymous callers.
type FeedRequest struct {
	Limit    int
	Offset   int
	ViewerID int64
}

// Feed pagination bounds; requests outside them are clamped, not rejected.
const (
	DefaultFeedLimit = 20
	MaxFeedLimit     = 50
)
