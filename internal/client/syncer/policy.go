package syncer

import (
	"context"

	"github.com/mpetrenko/brandsync/internal/client/models"
)

// ConflictPolicy selects what happens when both a local and a remote value
// exist for a key and disagree.
type ConflictPolicy int

const (
	// PolicyLocalFirst (default) authors the local value over the remote
	// on the next save; the remote is not consulted before writing. This
	// is the only policy exercised by the field controller.
	PolicyLocalFirst ConflictPolicy = iota

	// PolicyRemoteFirst fetches before writing; a differing remote value
	// wins and is adopted locally, and the conflict hook is informed.
	PolicyRemoteFirst

	// PolicyManual fetches before writing and surfaces both values to the
	// conflict hook, which picks the content to keep. Without a decision
	// the local value stays pending.
	PolicyManual
)

// Conflict carries both sides of a disagreement for a single key.
type Conflict struct {
	UserID  string
	FieldID string
	Local   string
	Remote  string
}

// ConflictFunc resolves a conflict. resolved is the content to keep;
// ok=false leaves the local value pending for a later attempt.
type ConflictFunc func(c Conflict) (resolved string, ok bool)

// resolveBeforeWrite implements the remote-first and manual policies.
// It returns done=true when the save has been fully handled (no remote
// write should follow).
func (c *Coordinator) resolveBeforeWrite(ctx context.Context, rec *models.FieldRecord, notify func(models.SyncStatus)) (done bool, err error) {
	remoteRec, ok, ferr := c.remote.FetchField(ctx, rec.FieldID)
	if ferr != nil {
		// Cannot consult the remote; fall back to writing local, the
		// ordinary offline handling covers the failure.
		return false, nil
	}
	if !ok || remoteRec.Content == rec.Content {
		return false, nil
	}

	conflict := Conflict{
		UserID:  rec.UserID,
		FieldID: rec.FieldID,
		Local:   rec.Content,
		Remote:  remoteRec.Content,
	}

	switch c.policy {
	case PolicyRemoteFirst:
		remoteRec.UserID = rec.UserID
		if err := c.store.PutSynced(ctx, remoteRec); err != nil {
			notify(models.StatusError)
			return true, err
		}
		if c.onConflict != nil {
			c.onConflict(conflict)
		}
		notify(models.StatusSynced)
		return true, nil

	case PolicyManual:
		if c.onConflict == nil {
			// Nobody to decide: keep the local value pending.
			notify(models.StatusOffline)
			return true, nil
		}
		resolved, decided := c.onConflict(conflict)
		if !decided {
			notify(models.StatusOffline)
			return true, nil
		}
		rec.Content = resolved
		return false, nil
	}

	return false, nil
}
