// Package models defines client-side data models used by the brandsync
// engine and CLI.
package models

import "time"

// SyncStatus is the live per-field indicator of whether the local and
// remote copies of a field are known to agree. It is attached to a field's
// session, never persisted.
type SyncStatus string

const (
	// StatusSynced means the remote acknowledged the last local write.
	StatusSynced SyncStatus = "synced"
	// StatusSyncing means a remote write or fetch is in flight.
	StatusSyncing SyncStatus = "syncing"
	// StatusOffline means the last remote attempt failed on a transient
	// network condition; the local value is preserved and retried later.
	StatusOffline SyncStatus = "offline"
	// StatusError means an unrecoverable local failure (storage, codec),
	// distinct from network absence.
	StatusError SyncStatus = "error"
)

// Category classifies a field for routing and organization only; it is not
// part of the field's identity.
type Category string

const (
	CategoryAvatar      Category = "avatar"
	CategoryCanvas      Category = "canvas"
	CategoryAvatarsList Category = "avatars_list"
	CategorySettings    Category = "settings"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryAvatar, CategoryCanvas, CategoryAvatarsList, CategorySettings:
		return true
	}
	return false
}

// FieldRecord is the unit of persistence: one named, independently
// synchronized piece of brand data. (UserID, FieldID) is unique in the
// local store.
type FieldRecord struct {
	// UserID is the opaque stable identifier of the owning account.
	UserID string

	// FieldID is unique within a user's namespace,
	// e.g. "avatar_demographics_age".
	FieldID string

	// Category tags the field for routing; not part of its identity.
	Category Category

	// Content is the serialized field payload. Callers serialize richer
	// types to and from strings.
	Content string

	// UpdatedAt is the local last-write time, used to decide whether a
	// local value is newer than a freshly fetched remote one.
	UpdatedAt time.Time

	// Pending marks a local write that has not yet been acknowledged by
	// the remote.
	Pending bool
}
