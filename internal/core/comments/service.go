package comments

import (
	"context"
	"fmt"
	"strings"

	"Postline/internal/core/posts"
	"Postline/internal/core/users"
)

type commentService struct {
	commentRepo Repository
	postRepo    posts.Repository
}

// NewCommentService creates a new comment service
func NewCommentService(commentRepo Repository, postRepo posts.Repository) Service {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// Add creates a comment on an existing post. The returned view carries the
// author's name and avatar as they were at creation time.
func (s *commentService) Add(ctx context.Context, author *users.User, postID int64, text string) (*CommentView, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &ValidationError{Reason: "text is required"}
	}
	if len(text) > MaxCommentLength {
		return nil, &ValidationError{Reason: fmt.Sprintf("text exceeds %d characters", MaxCommentLength)}
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		// posts.ErrPostNotFound passes through untouched
		return nil, err
	}

	comment, err := s.commentRepo.Create(ctx, &Comment{
		PostID:   postID,
		AuthorID: author.ID,
		Text:     text,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return &CommentView{
		ID:              comment.ID,
		PostID:          comment.PostID,
		AuthorID:        author.ID,
		AuthorName:      author.Name,
		AuthorAvatarURL: author.AvatarURL,
		Text:            comment.Text,
		CreatedAt:       comment.CreatedAt,
	}, nil
}

// ListForPost retrieves a post's comments oldest-first.
func (s *commentService) ListForPost(ctx context.Context, postID int64) ([]*CommentView, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}
