package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Postline/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// hydratedPostQuery selects a post joined with its author plus fresh
// like/comment counts. $1 is the viewer id; zero means anonymous and
// yields liked_by_me = false for every row.
const hydratedPostQuery = `
	SELECT
		p.id, p.author_id, u.name, u.avatar_url,
		p.text, p.image_url, p.created_at, p.updated_at,
		(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id) AS likes_count,
		(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comments_count,
		EXISTS(SELECT 1 FROM likes l WHERE l.post_id = p.id AND l.user_id = $1) AS liked_by_me
	FROM posts p
	JOIN users u ON u.id = p.author_id`

// Create inserts a new post into the posts table
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		INSERT INTO posts (author_id, text, image_url)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, post.AuthorID, post.Text, post.ImageURL).
		Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	return post, nil
}

// GetByID retrieves the bare post row, used for ownership checks
func (r *postgresPostRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	query := `SELECT id, author_id, text, image_url, created_at, updated_at FROM posts WHERE id = $1`

	post := &posts.Post{}
	var imageURL sql.NullString
	var updatedAt sql.NullTime

	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&post.ID, &post.AuthorID, &post.Text, &imageURL, &post.CreatedAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	if imageURL.Valid {
		post.ImageURL = &imageURL.String
	}
	if updatedAt.Valid {
		post.UpdatedAt = &updatedAt.Time
	}

	return post, nil
}

// Update persists text, image URL and updated_at
func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) error {
	query := `UPDATE posts SET text = $1, image_url = $2, updated_at = $3 WHERE id = $4`

	res, err := r.db.ExecContext(ctx, query, post.Text, post.ImageURL, post.UpdatedAt, post.ID)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return posts.ErrPostNotFound
	}

	return nil
}

// Delete removes the post row; comments and likes cascade via FK
func (r *postgresPostRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return posts.ErrPostNotFound
	}

	return nil
}

// GetView retrieves one hydrated post view for the given viewer
func (r *postgresPostRepo) GetView(ctx context.Context, id, viewerID int64) (*posts.PostView, error) {
	row := r.db.QueryRowContext(ctx, hydratedPostQuery+` WHERE p.id = $2`, viewerID, id)

	view, err := scanPostView(row)
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post view: %w", err)
	}

	return view, nil
}

// ListFeed retrieves hydrated views newest-first. The id tiebreaker keeps
// offset pagination deterministic across equal timestamps.
func (r *postgresPostRepo) ListFeed(ctx context.Context, limit, offset int, viewerID int64) ([]*posts.PostView, error) {
	query := hydratedPostQuery + `
	ORDER BY p.created_at DESC, p.id DESC
	LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, viewerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list feed: %w", err)
	}
	defer rows.Close()

	views := make([]*posts.PostView, 0, limit)
	for rows.Next() {
		view, err := scanPostView(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feed row: %w", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate feed rows: %w", err)
	}

	return views, nil
}

// rowScanner covers *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPostView(row rowScanner) (*posts.PostView, error) {
	view := &posts.PostView{}
	var authorAvatar, imageURL sql.NullString
	var updatedAt sql.NullTime

	err := row.Scan(
		&view.ID, &view.AuthorID, &view.AuthorName, &authorAvatar,
		&view.Text, &imageURL, &view.CreatedAt, &updatedAt,
		&view.LikesCount, &view.CommentsCount, &view.LikedByMe,
	)
	if err != nil {
		return nil, err
	}

	if authorAvatar.Valid {
		view.AuthorAvatarURL = &authorAvatar.String
	}
	if imageURL.Valid {
		view.ImageURL = &imageURL.String
	}
	if updatedAt.Valid {
		t := updatedAt.Time.UTC()
		view.UpdatedAt = &t
	}

	return view, nil
}
