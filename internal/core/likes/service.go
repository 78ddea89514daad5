package likes

import (
	"context"
	"fmt"

	"Postline/internal/core/posts"
)

type likeService struct {
	likeRepo Repository
	postRepo posts.Repository
}

// NewLikeService creates a new like service
func NewLikeService(likeRepo Repository, postRepo posts.Repository) Service {
	return &likeService{
		likeRepo: likeRepo,
		postRepo: postRepo,
	}
}

// Like records a like on an existing post.
func (s *likeService) Like(ctx context.Context, userID, postID int64) error {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		// posts.ErrPostNotFound passes through untouched
		return err
	}

	if err := s.likeRepo.Create(ctx, &Like{PostID: postID, UserID: userID}); err != nil {
		if err == ErrAlreadyLiked {
			return err
		}
		return fmt.Errorf("failed to create like: %w", err)
	}

	return nil
}

// Unlike removes the user's like if present; absent rows succeed silently.
func (s *likeService) Unlike(ctx context.Context, userID, postID int64) error {
	if err := s.likeRepo.Delete(ctx, postID, userID); err != nil {
		return fmt.Errorf("failed to remove like: %w", err)
	}
	return nil
}
