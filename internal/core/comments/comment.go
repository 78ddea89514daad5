package comments

import "time"

// MaxCommentLength bounds comment text after trimming.
const MaxCommentLength = 2000

// Comment is the persisted comment row. Comments are immutable after
// creation and disappear only via parent post cascade.
type Comment struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Text      string    `json:"text" db:"text"`
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"postId" db:"post_id"`
	AuthorID  int64     `json:"authorId" db:"author_id"`
}

// CommentView is a comment hydrated with author name and avatar.
type CommentView struct {
	ID              int64     `json:"id"`
	PostID          int64     `json:"post_id"`
	AuthorID        int64     `json:"author_id"`
	AuthorName      string    `json:"author_name"`
	AuthorAvatarURL *string   `json:"author_avatar_url"`
	Text            string    `json:"text"`
	CreatedAt       time.Time `json:"created_at"`
}
