// Package field implements the per-field controller: the reactive unit a
// screen binds to. A controller owns one field's current value, its sync
// status and its debounced save pipeline, and delegates all persistence
// to the sync coordinator.
package field

import (
	"context"
	"sync"
	"time"

	"github.com/mpetrenko/brandsync/internal/client/models"
)

// DefaultDebounce is the save debounce applied when the config leaves it
// zero. Keystrokes within this window collapse into a single write.
const DefaultDebounce = 500 * time.Millisecond

// Syncer is the slice of the sync coordinator a controller needs.
type Syncer interface {
	LoadField(ctx context.Context, userID, fieldID, fallback string) (string, models.SyncStatus, error)
	SaveField(ctx context.Context, rec *models.FieldRecord, onStatus func(models.SyncStatus)) error
	Refresh(ctx context.Context, userID, fieldID string) (*models.FieldRecord, models.SyncStatus, error)
}

// ConnectionMonitor is the slice of the connectivity monitor a controller
// needs to heal after a reconnect.
type ConnectionMonitor interface {
	IsOnline() bool
	Subscribe(fn func(bool)) (unsubscribe func())
}

// Config describes one bound field.
type Config struct {
	UserID   string
	FieldID  string
	Category models.Category

	// Default is returned when the field exists nowhere yet.
	Default string

	// Debounce overrides DefaultDebounce when positive.
	Debounce time.Duration

	// Codec validates values on the way in and out of the store.
	// Nil means StringCodec.
	Codec Codec

	// OnStatus is invoked on every status change, after the controller's
	// own state is updated. Optional.
	OnStatus func(models.SyncStatus)

	// OnError is invoked at most once per failure episode; it resets when
	// the field reaches a non-error status again. Optional.
	OnError func(error)
}

// Snapshot is a point-in-time copy of a controller's observable state.
type Snapshot struct {
	Value   string
	Status  models.SyncStatus
	Loading bool
	Err     error
}

// Controller binds one field to the sync coordinator. All methods are
// safe for concurrent use.
type Controller struct {
	cfg     Config
	sync    Syncer
	monitor ConnectionMonitor

	mu          sync.Mutex
	value       string
	status      models.SyncStatus
	loading     bool
	err         error
	errNotified bool
	closed      bool
	timer       *time.Timer
	gen         uint64

	unsubscribe func()
	saves       sync.WaitGroup
}

// New builds a controller. monitor may be nil when no connectivity signal
// is available; the controller then relies on periodic sync for healing.
func New(s Syncer, monitor ConnectionMonitor, cfg Config) *Controller {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if cfg.Codec == nil {
		cfg.Codec = StringCodec{}
	}
	return &Controller{
		cfg:     cfg,
		sync:    s,
		monitor: monitor,
		status:  models.StatusSynced,
	}
}

// Bind loads the field's value through the local-first read path and
// starts listening for reconnects. It must be called once before
// OnChange.
func (c *Controller) Bind(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	content, st, err := c.sync.LoadField(ctx, c.cfg.UserID, c.cfg.FieldID, c.cfg.Default)

	c.mu.Lock()
	c.loading = false
	if err != nil {
		c.value = content
		c.mu.Unlock()
		c.setStatus(st)
		c.reportError(err)
		return err
	}

	decoded, derr := c.cfg.Codec.Decode(content)
	if derr != nil {
		// Keep the raw content so nothing is silently dropped; the
		// error status tells the screen the payload needs attention.
		c.value = content
		c.mu.Unlock()
		c.setStatus(models.StatusError)
		c.reportError(derr)
		return nil
	}
	c.value = decoded
	c.mu.Unlock()
	c.setStatus(st)

	if c.monitor != nil {
		c.unsubscribe = c.monitor.Subscribe(c.onConnection)
	}
	return nil
}

// Value returns the current value.
func (c *Controller) Value() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Status returns the current sync status.
func (c *Controller) Status() models.SyncStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Snapshot returns a consistent copy of the observable state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{Value: c.value, Status: c.status, Loading: c.loading, Err: c.err}
}

// OnChange records a new value and schedules a debounced save. Each call
// cancels the previous pending save, so a burst of edits produces exactly
// one write carrying the final value.
func (c *Controller) OnChange(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.value = value
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.cfg.Debounce, func() {
		c.flush(context.Background())
	})
}

// Flush saves the current value immediately, bypassing any pending
// debounce window.
func (c *Controller) Flush(ctx context.Context) {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()
	c.flush(ctx)
}

// Refresh forces a fetch from the remote and, on success, adopts the
// remote value. On network failure the current value is untouched and the
// status turns offline.
func (c *Controller) Refresh(ctx context.Context) error {
	rec, st, err := c.sync.Refresh(ctx, c.cfg.UserID, c.cfg.FieldID)
	if err != nil {
		c.setStatus(st)
		c.reportError(err)
		return err
	}
	if rec != nil {
		decoded, derr := c.cfg.Codec.Decode(rec.Content)
		if derr != nil {
			c.setStatus(models.StatusError)
			c.reportError(derr)
			return nil
		}
		c.mu.Lock()
		c.value = decoded
		c.mu.Unlock()
	}
	c.setStatus(st)
	return nil
}

// Close flushes any pending debounced save, waits for in-flight saves and
// detaches from the connectivity monitor. The controller is unusable
// afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	pending := c.timer != nil && c.timer.Stop()
	c.timer = nil
	c.mu.Unlock()

	if pending {
		c.flush(context.Background())
	}
	c.saves.Wait()

	if c.unsubscribe != nil {
		c.unsubscribe()
	}
}

// flush pushes the current value through the coordinator. Status
// callbacks from superseded saves are discarded so the indicator always
// reflects the most recent edit.
func (c *Controller) flush(ctx context.Context) {
	c.mu.Lock()
	value := c.value
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	content, err := c.cfg.Codec.Encode(value)
	if err != nil {
		c.setStatusIfCurrent(gen, models.StatusError)
		c.reportError(err)
		return
	}

	rec := &models.FieldRecord{
		UserID:   c.cfg.UserID,
		FieldID:  c.cfg.FieldID,
		Category: c.cfg.Category,
		Content:  content,
	}

	c.saves.Add(1)
	defer c.saves.Done()

	err = c.sync.SaveField(ctx, rec, func(s models.SyncStatus) {
		c.setStatusIfCurrent(gen, s)
	})
	if err != nil {
		c.reportError(err)
	}
}

// onConnection heals the field after a reconnect: an unacknowledged edit
// is re-saved, an at-rest field is refreshed to pick up remote changes.
func (c *Controller) onConnection(online bool) {
	if !online {
		return
	}

	c.mu.Lock()
	st := c.status
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return
	}

	switch st {
	case models.StatusOffline:
		c.flush(context.Background())
	case models.StatusSynced:
		_ = c.Refresh(context.Background())
	}
}

func (c *Controller) setStatus(s models.SyncStatus) {
	c.mu.Lock()
	changed := c.status != s
	c.status = s
	if s != models.StatusError {
		c.err = nil
		c.errNotified = false
	}
	c.mu.Unlock()

	if changed && c.cfg.OnStatus != nil {
		c.cfg.OnStatus(s)
	}
}

func (c *Controller) setStatusIfCurrent(gen uint64, s models.SyncStatus) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	changed := c.status != s
	c.status = s
	if s != models.StatusError {
		c.err = nil
		c.errNotified = false
	}
	c.mu.Unlock()

	if changed && c.cfg.OnStatus != nil {
		c.cfg.OnStatus(s)
	}
}

// reportError stores err and invokes the error hook once per episode.
func (c *Controller) reportError(err error) {
	c.mu.Lock()
	c.err = err
	notify := !c.errNotified && c.cfg.OnError != nil
	c.errNotified = true
	c.mu.Unlock()

	if notify {
		c.cfg.OnError(err)
	}
}
