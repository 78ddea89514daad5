package posts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"Postline/internal/core/media"
)

type postService struct {
	postRepo  Repository
	mediaRepo media.Repository
	blobs     *media.Store
}

// NewPostService creates a new post lifecycle service
func NewPostService(postRepo Repository, mediaRepo media.Repository, blobs *media.Store) Service {
	return &postService{
		postRepo:  postRepo,
		mediaRepo: mediaRepo,
		blobs:     blobs,
	}
}

// Create validates the text, stores an optional image and returns the
// hydrated view.
func (s *postService) Create(ctx context.Context, authorID int64, req CreatePostRequest) (*PostView, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, &ValidationError{Reason: "text is required"}
	}

	var imageURL *string
	if req.Image != nil {
		url, err := s.blobs.Save(req.Image.Data, req.Image.Filename, fmt.Sprintf("post%d", authorID))
		if err != nil {
			return nil, err
		}
		imageURL = &url
	}

	post, err := s.postRepo.Create(ctx, &Post{
		AuthorID: authorID,
		Text:     text,
		ImageURL: imageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	if imageURL != nil {
		if _, err := s.mediaRepo.Create(ctx, &media.Media{
			OwnerType: media.OwnerPost,
			OwnerID:   post.ID,
			URL:       *imageURL,
			Type:      media.TypeImage,
		}); err != nil {
			return nil, fmt.Errorf("failed to record media: %w", err)
		}
	}

	return s.postRepo.GetView(ctx, post.ID, authorID)
}

// Update edits the caller's own post. A new image replaces the URL (the
// old blob is orphaned deliberately); otherwise RemoveImage clears it;
// otherwise it is untouched. updated_at is always re-stamped.
func (s *postService) Update(ctx context.Context, authorID, postID int64, req UpdatePostRequest) (*PostView, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, &ValidationError{Reason: "text is required"}
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != authorID {
		return nil, ErrNotPostAuthor
	}

	switch {
	case req.Image != nil:
		url, err := s.blobs.Save(req.Image.Data, req.Image.Filename, fmt.Sprintf("post%d", authorID))
		if err != nil {
			return nil, err
		}
		post.ImageURL = &url

		if _, err := s.mediaRepo.Create(ctx, &media.Media{
			OwnerType: media.OwnerPost,
			OwnerID:   post.ID,
			URL:       url,
			Type:      media.TypeImage,
		}); err != nil {
			return nil, fmt.Errorf("failed to record media: %w", err)
		}
	case req.RemoveImage:
		post.ImageURL = nil
	}

	post.Text = text
	now := time.Now().UTC()
	post.UpdatedAt = &now

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return s.postRepo.GetView(ctx, post.ID, authorID)
}

// Delete removes the caller's own post. Comments and likes cascade at the
// store; media audit rows are removed explicitly because the polymorphic
// owner columns carry no FK.
func (s *postService) Delete(ctx context.Context, authorID, postID int64) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != authorID {
		return ErrNotPostAuthor
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if err := s.mediaRepo.DeleteByOwner(ctx, media.OwnerPost, postID); err != nil {
		return fmt.Errorf("failed to delete media records: %w", err)
	}

	return nil
}

// Get retrieves a hydrated post view for the given viewer.
func (s *postService) Get(ctx context.Context, postID, viewerID int64) (*PostView, error) {
	return s.postRepo.GetView(ctx, postID, viewerID)
}

// ListFeed returns hydrated views newest-first with clamped pagination.
func (s *postService) ListFeed(ctx context.Context, req FeedRequest) ([]*PostView, error) {
	limit := req.Limit
	if limit < 1 {
		limit = 1
	}
	if limit > MaxFeedLimit {
		limit = MaxFeedLimit
	}

	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	return s.postRepo.ListFeed(ctx, limit, offset, req.ViewerID)
}
