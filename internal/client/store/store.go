// Package store implements the device-local field cache: a durable
// key-value table keyed by (user, field identifier) that survives restarts
// and never waits on network I/O. It is the read path of truth for instant
// UI response.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/mpetrenko/brandsync/internal/client/models"
)

// ErrStorageUnavailable indicates the local cache could not be read or
// written. Callers map it to the "error" sync status because the user's
// edit may not survive a restart.
var ErrStorageUnavailable = errors.New("local store unavailable")

// Repository is the local store contract used by the sync coordinator.
type Repository interface {
	// Get returns the cached record for (userID, fieldID). found=false
	// means the field was never cached on this device.
	Get(ctx context.Context, userID, fieldID string) (*models.FieldRecord, bool, error)

	// Put upserts a locally authored value and marks it pending until a
	// remote write is acknowledged.
	Put(ctx context.Context, rec *models.FieldRecord) error

	// PutSynced upserts a value that is already known to the remote
	// (backfill after a fetch); the row is stored with pending cleared.
	PutSynced(ctx context.Context, rec *models.FieldRecord) error

	// MarkSynced clears the pending mark, but only if the row still holds
	// the write identified by updatedAt. A newer local edit keeps the row
	// pending so it is not lost by an older write's acknowledgement.
	MarkSynced(ctx context.Context, userID, fieldID string, updatedAt time.Time) error

	// GetPending lists all rows awaiting remote acknowledgement.
	GetPending(ctx context.Context, userID string) ([]models.FieldRecord, error)

	// LastSyncAt returns the high-water mark of the last changed-since
	// pull, zero time if the user never synced on this device.
	LastSyncAt(ctx context.Context, userID string) (time.Time, error)

	// SetLastSyncAt advances the changed-since high-water mark.
	SetLastSyncAt(ctx context.Context, userID string, t time.Time) error
}
