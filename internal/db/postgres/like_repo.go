package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Postline/internal/core/likes"
)

type postgresLikeRepo struct {
	db *sql.DB
}

// NewLikeRepository creates a new PostgreSQL like repository
func NewLikeRepository(db *sql.DB) likes.Repository {
	return &postgresLikeRepo{db: db}
}

// Create inserts a like row. Concurrent likers race here: the loser's
// insert trips the unique constraint and surfaces as ErrAlreadyLiked.
func (r *postgresLikeRepo) Create(ctx context.Context, like *likes.Like) error {
	query := `
		INSERT INTO likes (post_id, user_id)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, like.PostID, like.UserID).
		Scan(&like.ID, &like.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "likes_post_id_user_id_key") {
			return likes.ErrAlreadyLiked
		}
		return fmt.Errorf("failed to insert like: %w", err)
	}

	return nil
}

// Delete removes the (post, user) like row; zero rows affected is success
func (r *postgresLikeRepo) Delete(ctx context.Context, postID, userID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM likes WHERE post_id = $1 AND user_id = $2`, postID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}

	return nil
}
