package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Postline/internal/core/media"
)

type postgresMediaRepo struct {
	db *sql.DB
}

// NewMediaRepository creates a new PostgreSQL media repository
func NewMediaRepository(db *sql.DB) media.Repository {
	return &postgresMediaRepo{db: db}
}

// Create inserts a media audit row
func (r *postgresMediaRepo) Create(ctx context.Context, m *media.Media) (*media.Media, error) {
	query := `
		INSERT INTO media (owner_type, owner_id, url, type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, m.OwnerType, m.OwnerID, m.URL, m.Type).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert media record: %w", err)
	}

	return m, nil
}

// DeleteByOwner removes all audit rows for one owner
func (r *postgresMediaRepo) DeleteByOwner(ctx context.Context, ownerType string, ownerID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM media WHERE owner_type = $1 AND owner_id = $2`, ownerType, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete media records: %w", err)
	}

	return nil
}
