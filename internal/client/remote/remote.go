// Package remote provides the client-side capability for reading and
// writing a single field's authoritative value against the hosted backend.
// Only the sync coordinator is allowed to call it.
package remote

import (
	"context"
	"time"

	"github.com/mpetrenko/brandsync/internal/client/models"
)

// Client is the remote persistence and auth contract. All field operations
// are idempotent and distinguish "not found" from "network error".
type Client interface {
	Close() error

	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	Ping(ctx context.Context) error

	// FetchField returns the field's latest remote value. found=false
	// means the field has never been written remotely.
	FetchField(ctx context.Context, fieldID string) (*models.FieldRecord, bool, error)

	// WriteField upserts the field's value. Failure surfaces as an error,
	// never silently dropped.
	WriteField(ctx context.Context, rec *models.FieldRecord) error

	// FetchChangedSince returns all fields changed remotely after since,
	// together with the server's current time (the next high-water mark).
	FetchChangedSince(ctx context.Context, since time.Time) ([]models.FieldRecord, time.Time, error)

	// GetDocumentUploadURL returns a storage key and a presigned PUT URL
	// for uploading a brand document.
	GetDocumentUploadURL(ctx context.Context, fileName string) (string, string, error)

	// GetDocumentDownloadURL returns a presigned GET URL for a previously
	// uploaded document.
	GetDocumentDownloadURL(ctx context.Context, key string) (string, error)
}
