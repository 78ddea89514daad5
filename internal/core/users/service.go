package users

import (
	"context"
	"fmt"

	"Postline/internal/core/media"
)

type userService struct {
	userRepo  Repository
	mediaRepo media.Repository
	blobs     *media.Store
}

// NewUserService creates a new user profile service
func NewUserService(userRepo Repository, mediaRepo media.Repository, blobs *media.Store) Service {
	return &userService{
		userRepo:  userRepo,
		mediaRepo: mediaRepo,
		blobs:     blobs,
	}
}

// Me returns the viewer's own profile.
func (s *userService) Me(ctx context.Context, userID int64) (*UserView, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return NewUserView(user), nil
}

// UpdateAvatar stores the uploaded image, points the user's avatar URL at
// it and records a media audit row. The previous avatar blob is left in
// place; only the URL moves.
func (s *userService) UpdateAvatar(ctx context.Context, user *User, data []byte, filename string) (*UserView, error) {
	url, err := s.blobs.Save(data, filename, fmt.Sprintf("user%d_avatar", user.ID))
	if err != nil {
		// media validation errors pass through untouched
		return nil, err
	}

	updated, err := s.userRepo.UpdateAvatar(ctx, user.ID, url)
	if err != nil {
		return nil, fmt.Errorf("failed to update avatar: %w", err)
	}

	if _, err := s.mediaRepo.Create(ctx, &media.Media{
		OwnerType: media.OwnerUser,
		OwnerID:   user.ID,
		URL:       url,
		Type:      media.TypeImage,
	}); err != nil {
		return nil, fmt.Errorf("failed to record media: %w", err)
	}

	return NewUserView(updated), nil
}
