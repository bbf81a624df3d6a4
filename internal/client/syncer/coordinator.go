// Package syncer implements the sync coordinator: the only component
// allowed to call the remote client. It owns the write queue, the retry
// policy and the conflict-resolution rule, and turns remote failures into
// per-field sync statuses instead of surfacing them as errors.
package syncer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mpetrenko/brandsync/internal/client/models"
	"github.com/mpetrenko/brandsync/internal/client/remote"
	"github.com/mpetrenko/brandsync/internal/client/store"
	"github.com/mpetrenko/brandsync/internal/common"
	"github.com/mpetrenko/brandsync/internal/logging"
	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/errgroup"
)

const (
	// syncAllConcurrency bounds the push fan-out; fields are independent
	// so their order does not matter.
	syncAllConcurrency = 4

	retryBaseDelay  = 250 * time.Millisecond
	retryMaxRetries = 2
)

// Coordinator mediates between the local store and the remote client.
// It is constructed explicitly and passed to field controllers; there is
// no ambient singleton. Safe for concurrent use.
type Coordinator struct {
	store  store.Repository
	remote remote.Client
	logger logging.Logger

	policy     ConflictPolicy
	onConflict ConflictFunc
	now        func() time.Time

	mu   sync.Mutex
	keys map[string]*sync.Mutex

	cancel context.CancelFunc
	runCtx context.Context
	wg     sync.WaitGroup
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithConflictPolicy overrides the default local-first policy.
func WithConflictPolicy(p ConflictPolicy) Option {
	return func(c *Coordinator) { c.policy = p }
}

// WithConflictFunc installs the hook consulted by the remote-first and
// manual policies when a remote value disagrees with a local one.
func WithConflictFunc(fn ConflictFunc) Option {
	return func(c *Coordinator) { c.onConflict = fn }
}

// WithClock replaces the wall clock; tests use it for deterministic
// last-write timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) { c.now = now }
}

// New constructs a Coordinator. Callers own the lifecycle and must call
// Close when done.
func New(st store.Repository, rc remote.Client, l logging.Logger, opts ...Option) *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Coordinator{
		store:  st,
		remote: rc,
		logger: l.With("module", "syncer"),
		policy: PolicyLocalFirst,
		now:    time.Now,
		keys:   make(map[string]*sync.Mutex),
		cancel: cancel,
		runCtx: ctx,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close stops periodic sync goroutines and waits for them to drain.
// In-flight remote writes already dispatched are allowed to finish.
func (c *Coordinator) Close() {
	c.cancel()
	c.wg.Wait()
}

// lockKey serializes remote writes per (user, field) key: the data-model
// invariant is at most one in-flight remote write per key. Different keys
// proceed independently.
func (c *Coordinator) lockKey(userID, fieldID string) func() {
	c.mu.Lock()
	k := userID + "\x00" + fieldID
	m, ok := c.keys[k]
	if !ok {
		m = &sync.Mutex{}
		c.keys[k] = m
	}
	c.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// LoadField implements the local-first read path: the local store answers
// without any network call; the remote is consulted only on a local miss,
// and its value is backfilled into the store. On remote failure the
// caller-supplied fallback is returned with the offline status — the user
// is never blocked on network I/O to see their own prior input.
func (c *Coordinator) LoadField(ctx context.Context, userID, fieldID, fallback string) (string, models.SyncStatus, error) {
	if fieldID == "" {
		return fallback, models.StatusError, common.ErrorMissingFieldID
	}

	rec, found, err := c.store.Get(ctx, userID, fieldID)
	if err != nil {
		return fallback, models.StatusError, err
	}
	if found {
		// A pending row is an unacknowledged local write; report it as
		// offline so the UI shows the value still needs to reach the
		// remote.
		if rec.Pending {
			return rec.Content, models.StatusOffline, nil
		}
		return rec.Content, models.StatusSynced, nil
	}

	remoteRec, ok, err := c.remote.FetchField(ctx, fieldID)
	if err != nil {
		c.logger.Warn(ctx, "remote fetch failed, using fallback",
			"field_id", fieldID, "error", err)
		return fallback, models.StatusOffline, nil
	}
	if !ok {
		// Never written anywhere: the record is created on first save.
		return fallback, models.StatusSynced, nil
	}

	remoteRec.UserID = userID
	if err := c.store.PutSynced(ctx, remoteRec); err != nil {
		return remoteRec.Content, models.StatusError, err
	}
	return remoteRec.Content, models.StatusSynced, nil
}

// SaveField writes locally first, then attempts the remote write. The
// local write is never rolled back: a network failure is reported through
// onStatus as offline and logged, not returned. Only local persistence
// failures propagate as errors, because they put the edit at risk.
func (c *Coordinator) SaveField(ctx context.Context, rec *models.FieldRecord, onStatus func(models.SyncStatus)) error {
	if rec.FieldID == "" {
		return common.ErrorMissingFieldID
	}
	if !rec.Category.Valid() {
		return common.ErrorInvalidCategory
	}
	notify := func(s models.SyncStatus) {
		if onStatus != nil {
			onStatus(s)
		}
	}

	rec.UpdatedAt = c.now()
	rec.Pending = true
	if err := c.store.Put(ctx, rec); err != nil {
		notify(models.StatusError)
		return err
	}
	notify(models.StatusSyncing)

	unlock := c.lockKey(rec.UserID, rec.FieldID)
	defer unlock()

	if c.policy != PolicyLocalFirst {
		done, err := c.resolveBeforeWrite(ctx, rec, notify)
		if done || err != nil {
			return err
		}
	}

	if err := c.remote.WriteField(ctx, rec); err != nil {
		if errors.Is(err, remote.ErrUnavailable) {
			c.logger.Warn(ctx, "remote write failed, will retry on reconnect",
				"field_id", rec.FieldID, "error", err)
			notify(models.StatusOffline)
			return nil
		}
		c.logger.Error(ctx, "remote write rejected",
			"field_id", rec.FieldID, "error", err)
		notify(models.StatusError)
		return nil
	}

	if err := c.store.MarkSynced(ctx, rec.UserID, rec.FieldID, rec.UpdatedAt); err != nil {
		notify(models.StatusError)
		return err
	}
	notify(models.StatusSynced)
	return nil
}

// Refresh forces a remote fetch. On success the remote value overwrites
// the local store (remote is authoritative once explicitly requested) and
// the fresh record is returned with status synced. On network failure the
// cached local value is untouched and a nil record is returned with
// status offline.
func (c *Coordinator) Refresh(ctx context.Context, userID, fieldID string) (*models.FieldRecord, models.SyncStatus, error) {
	rec, ok, err := c.remote.FetchField(ctx, fieldID)
	if err != nil {
		c.logger.Warn(ctx, "refresh failed", "field_id", fieldID, "error", err)
		return nil, models.StatusOffline, nil
	}
	if !ok {
		return nil, models.StatusSynced, nil
	}

	rec.UserID = userID
	if err := c.store.PutSynced(ctx, rec); err != nil {
		return nil, models.StatusError, err
	}
	return rec, models.StatusSynced, nil
}

// SyncAll reconciles all queued changes for a user: it pushes pending
// local writes (bounded fan-out, exponential backoff on transient
// failures), then pulls remote changes since the last high-water mark and
// backfills any that do not collide with a newer or still-pending local
// edit.
func (c *Coordinator) SyncAll(ctx context.Context, userID string) error {
	pending, err := c.store.GetPending(ctx, userID)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(syncAllConcurrency)
	for _, rec := range pending {
		rec := rec
		g.Go(func() error {
			unlock := c.lockKey(userID, rec.FieldID)
			defer unlock()

			backoff := retry.WithMaxRetries(retryMaxRetries, retry.NewExponential(retryBaseDelay))
			err := retry.Do(gctx, backoff, func(ctx context.Context) error {
				if err := c.remote.WriteField(ctx, &rec); err != nil {
					if errors.Is(err, remote.ErrUnavailable) {
						return retry.RetryableError(err)
					}
					return err
				}
				return nil
			})
			if err != nil {
				return err
			}
			return c.store.MarkSynced(gctx, userID, rec.FieldID, rec.UpdatedAt)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	since, err := c.store.LastSyncAt(ctx, userID)
	if err != nil {
		return err
	}
	changed, serverTime, err := c.remote.FetchChangedSince(ctx, since)
	if err != nil {
		return err
	}
	for i := range changed {
		rec := changed[i]
		rec.UserID = userID

		local, found, err := c.store.Get(ctx, userID, rec.FieldID)
		if err != nil {
			return err
		}
		// Local-first: never clobber an unacknowledged or newer local edit.
		if found && (local.Pending || local.UpdatedAt.After(rec.UpdatedAt)) {
			continue
		}
		if err := c.store.PutSynced(ctx, &rec); err != nil {
			return err
		}
	}
	return c.store.SetLastSyncAt(ctx, userID, serverTime)
}

// StartPeriodicSync runs SyncAll every interval until the returned stop
// function is called or the coordinator is closed. Failures are logged
// and never interrupt the user's current interaction.
func (c *Coordinator) StartPeriodicSync(userID string, interval time.Duration) (stop func()) {
	ctx, cancel := context.WithCancel(c.runCtx)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := c.SyncAll(ctx, userID); err != nil {
					c.logger.Warn(ctx, "periodic sync failed", "error", err)
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return cancel
}
