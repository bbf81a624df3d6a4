// Package fields provides the PostgreSQL-backed repository for the
// authoritative copies of synchronized brand fields.
package fields

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mpetrenko/brandsync/internal/common"
	"github.com/mpetrenko/brandsync/internal/dbx"
	"github.com/mpetrenko/brandsync/internal/server/models"
)

// PostgresRepository implements field storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Upsert writes the field by (user_id, field_id). The update time is
// assigned by the database so that changed-since queries see a single
// clock.
func (r *PostgresRepository) Upsert(ctx context.Context, field *models.Field) (time.Time, error) {
	query := `
		INSERT INTO fields (user_id, field_id, category, content, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (user_id, field_id)
		DO UPDATE SET
			category = EXCLUDED.category,
			content = EXCLUDED.content,
			updated_at = now()
		RETURNING updated_at;
	`
	var updatedAt time.Time
	err := r.db.QueryRowContext(ctx, query,
		field.UserID, field.FieldID, field.Category, field.Content).Scan(&updatedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("db error: %w", err)
	}
	return updatedAt, nil
}

// Get returns the field or common.ErrorNotFound.
func (r *PostgresRepository) Get(ctx context.Context, userID, fieldID string) (*models.Field, error) {
	query := `
		SELECT category, content, updated_at FROM fields
		WHERE user_id = $1 AND field_id = $2
	`
	field := &models.Field{UserID: userID, FieldID: fieldID}
	err := r.db.QueryRowContext(ctx, query, userID, fieldID).Scan(
		&field.Category, &field.Content, &field.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return field, nil
}

// SelectChangedSince returns all of the user's fields updated strictly
// after since.
func (r *PostgresRepository) SelectChangedSince(ctx context.Context, userID string, since time.Time) ([]*models.Field, error) {
	query := `
		SELECT field_id, category, content, updated_at FROM fields
		WHERE user_id = $1 AND updated_at > $2
	`
	rows, err := r.db.QueryContext(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to select fields: %w", err)
	}
	defer rows.Close()

	var result []*models.Field
	for rows.Next() {
		item := models.Field{UserID: userID}
		if err := rows.Scan(&item.FieldID, &item.Category, &item.Content, &item.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
