package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Postline/internal/core/comments"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

// Create inserts a new comment into the comments table
func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) (*comments.Comment, error) {
	query := `
		INSERT INTO comments (post_id, author_id, text)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, comment.PostID, comment.AuthorID, comment.Text).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	return comment, nil
}

// ListByPost retrieves a post's comments oldest-first, joined with the
// author's current name and avatar
func (r *postgresCommentRepo) ListByPost(ctx context.Context, postID int64) ([]*comments.CommentView, error) {
	query := `
		SELECT c.id, c.post_id, c.author_id, u.name, u.avatar_url, c.text, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC, c.id ASC`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	views := make([]*comments.CommentView, 0)
	for rows.Next() {
		view := &comments.CommentView{}
		var avatar sql.NullString

		err := rows.Scan(&view.ID, &view.PostID, &view.AuthorID, &view.AuthorName,
			&avatar, &view.Text, &view.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}

		if avatar.Valid {
			view.AuthorAvatarURL = &avatar.String
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comment rows: %w", err)
	}

	return views, nil
}
