package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mpetrenko/brandsync/internal/client/models"
	"github.com/mpetrenko/brandsync/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// storageErr tags low-level database failures so callers can map them to
// the "error" sync status with errors.Is(err, ErrStorageUnavailable).
func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, op, err)
}

func (r *SQLiteRepository) Get(ctx context.Context, userID, fieldID string) (*models.FieldRecord, bool, error) {
	query := `SELECT category, content, updated_at_unix_ms, pending FROM fields
		WHERE user_id = ? AND field_id = ?`

	var category, content string
	var updatedAtMs int64
	var pending int
	err := r.db.QueryRowContext(ctx, query, userID, fieldID).
		Scan(&category, &content, &updatedAtMs, &pending)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, storageErr("select field", err)
	}

	return &models.FieldRecord{
		UserID:    userID,
		FieldID:   fieldID,
		Category:  models.Category(category),
		Content:   content,
		UpdatedAt: time.UnixMilli(updatedAtMs),
		Pending:   pending != 0,
	}, true, nil
}

func (r *SQLiteRepository) Put(ctx context.Context, rec *models.FieldRecord) error {
	return r.put(ctx, rec, true)
}

func (r *SQLiteRepository) PutSynced(ctx context.Context, rec *models.FieldRecord) error {
	return r.put(ctx, rec, false)
}

func (r *SQLiteRepository) put(ctx context.Context, rec *models.FieldRecord, pending bool) error {
	query := `INSERT INTO fields (user_id, field_id, category, content, updated_at_unix_ms, pending)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, field_id) DO UPDATE SET
			category = excluded.category,
			content = excluded.content,
			updated_at_unix_ms = excluded.updated_at_unix_ms,
			pending = excluded.pending
	`
	p := 0
	if pending {
		p = 1
	}
	_, err := r.db.ExecContext(ctx, query,
		rec.UserID, rec.FieldID, string(rec.Category), rec.Content, rec.UpdatedAt.UnixMilli(), p)
	if err != nil {
		return storageErr("upsert field", err)
	}
	return nil
}

func (r *SQLiteRepository) MarkSynced(ctx context.Context, userID, fieldID string, updatedAt time.Time) error {
	// The updated_at guard keeps a newer local edit pending when an older
	// in-flight write is acknowledged after it.
	query := `UPDATE fields SET pending = 0
		WHERE user_id = ? AND field_id = ? AND updated_at_unix_ms = ?`
	_, err := r.db.ExecContext(ctx, query, userID, fieldID, updatedAt.UnixMilli())
	if err != nil {
		return storageErr("mark synced", err)
	}
	return nil
}

func (r *SQLiteRepository) GetPending(ctx context.Context, userID string) ([]models.FieldRecord, error) {
	query := `SELECT field_id, category, content, updated_at_unix_ms FROM fields
		WHERE user_id = ? AND pending = 1`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, storageErr("select pending fields", err)
	}
	defer rows.Close()

	var result []models.FieldRecord
	for rows.Next() {
		item := models.FieldRecord{UserID: userID, Pending: true}
		var category string
		var updatedAtMs int64
		if err := rows.Scan(&item.FieldID, &category, &item.Content, &updatedAtMs); err != nil {
			return nil, storageErr("scan pending field", err)
		}
		item.Category = models.Category(category)
		item.UpdatedAt = time.UnixMilli(updatedAtMs)
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate pending fields", err)
	}
	return result, nil
}

func (r *SQLiteRepository) LastSyncAt(ctx context.Context, userID string) (time.Time, error) {
	var ms int64
	err := r.db.QueryRowContext(ctx,
		`SELECT last_sync_unix_ms FROM sync_state WHERE user_id = ?`, userID).Scan(&ms)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, storageErr("select sync state", err)
	}
	return time.UnixMilli(ms), nil
}

func (r *SQLiteRepository) SetLastSyncAt(ctx context.Context, userID string, t time.Time) error {
	query := `INSERT INTO sync_state (user_id, last_sync_unix_ms) VALUES (?, ?)
		ON CONFLICT(user_id) DO UPDATE SET last_sync_unix_ms = excluded.last_sync_unix_ms`
	if _, err := r.db.ExecContext(ctx, query, userID, t.UnixMilli()); err != nil {
		return storageErr("update sync state", err)
	}
	return nil
}
