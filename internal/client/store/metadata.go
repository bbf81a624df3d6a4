package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mpetrenko/brandsync/internal/common"
	"github.com/mpetrenko/brandsync/internal/dbx"
)

// MetadataRepository is a small key-value table for client-side session
// data (cached login, user id, password hash). It is separate from the
// field cache so ClearOfflineData can wipe auth data without touching
// unsynced field edits.
type MetadataRepository struct {
	db dbx.DBTX
}

// NewMetadataRepository returns a MetadataRepository bound to the given DBTX.
func NewMetadataRepository(db dbx.DBTX) *MetadataRepository {
	return &MetadataRepository{db: db}
}

// Get returns the value stored under key, or common.ErrorNotFound if the
// key was never set.
func (r *MetadataRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, storageErr("select metadata", err)
	}
	return value, nil
}

// Set upserts the value stored under key.
func (r *MetadataRepository) Set(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return storageErr("upsert metadata", err)
	}
	return nil
}

// Clear removes all metadata rows.
func (r *MetadataRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM metadata`); err != nil {
		return storageErr("clear metadata", err)
	}
	return nil
}
