package field

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mpetrenko/brandsync/internal/client/connectivity"
	"github.com/mpetrenko/brandsync/internal/client/models"
	"github.com/mpetrenko/brandsync/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type okPinger struct{}

func (okPinger) Ping(ctx context.Context) error { return nil }

// fakeSyncer scripts the coordinator's answers and records saves.
type fakeSyncer struct {
	mu sync.Mutex

	loadContent string
	loadStatus  models.SyncStatus
	loadErr     error

	saveStatuses []models.SyncStatus
	saveErr      error
	saves        []models.FieldRecord
	saved        chan models.FieldRecord

	refreshRec    *models.FieldRecord
	refreshStatus models.SyncStatus
}

func newFakeSyncer() *fakeSyncer {
	return &fakeSyncer{
		loadStatus:    models.StatusSynced,
		saveStatuses:  []models.SyncStatus{models.StatusSyncing, models.StatusSynced},
		refreshStatus: models.StatusSynced,
		saved:         make(chan models.FieldRecord, 16),
	}
}

func (f *fakeSyncer) LoadField(ctx context.Context, userID, fieldID, fallback string) (string, models.SyncStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return fallback, models.StatusError, f.loadErr
	}
	if f.loadContent == "" {
		return fallback, f.loadStatus, nil
	}
	return f.loadContent, f.loadStatus, nil
}

func (f *fakeSyncer) SaveField(ctx context.Context, rec *models.FieldRecord, onStatus func(models.SyncStatus)) error {
	f.mu.Lock()
	f.saves = append(f.saves, *rec)
	statuses := f.saveStatuses
	err := f.saveErr
	f.mu.Unlock()

	for _, s := range statuses {
		if onStatus != nil {
			onStatus(s)
		}
	}
	f.saved <- *rec
	return err
}

func (f *fakeSyncer) Refresh(ctx context.Context, userID, fieldID string) (*models.FieldRecord, models.SyncStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.refreshRec, f.refreshStatus, nil
}

func (f *fakeSyncer) setSaveOutcome(statuses []models.SyncStatus, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveStatuses = statuses
	f.saveErr = err
}

func (f *fakeSyncer) savedRecords() []models.FieldRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.FieldRecord, len(f.saves))
	copy(out, f.saves)
	return out
}

func waitSave(t *testing.T, f *fakeSyncer) models.FieldRecord {
	t.Helper()
	select {
	case rec := <-f.saved:
		return rec
	case <-time.After(2 * time.Second):
		t.Fatal("no save dispatched")
		return models.FieldRecord{}
	}
}

func TestBindLoadsCachedValue(t *testing.T) {
	fs := newFakeSyncer()
	fs.loadContent = "we help founders find their voice"

	c := New(fs, nil, Config{
		UserID: "u1", FieldID: "canvas_promise", Category: models.CategoryCanvas,
	})
	require.NoError(t, c.Bind(context.Background()))

	snap := c.Snapshot()
	assert.Equal(t, "we help founders find their voice", snap.Value)
	assert.Equal(t, models.StatusSynced, snap.Status)
	assert.False(t, snap.Loading)
	assert.NoError(t, snap.Err)
}

func TestBindReturnsDefaultOnMiss(t *testing.T) {
	fs := newFakeSyncer()

	c := New(fs, nil, Config{
		UserID: "u1", FieldID: "canvas_promise", Category: models.CategoryCanvas,
		Default: "start here",
	})
	require.NoError(t, c.Bind(context.Background()))
	assert.Equal(t, "start here", c.Value())
}

func TestOnChangeCoalescesBurstIntoOneSave(t *testing.T) {
	fs := newFakeSyncer()
	c := New(fs, nil, Config{
		UserID: "u1", FieldID: "canvas_promise", Category: models.CategoryCanvas,
		Debounce: 30 * time.Millisecond,
	})
	require.NoError(t, c.Bind(context.Background()))
	defer c.Close()

	c.OnChange("a")
	c.OnChange("ab")
	c.OnChange("abc")

	rec := waitSave(t, fs)
	assert.Equal(t, "abc", rec.Content)
	assert.Equal(t, "canvas_promise", rec.FieldID)

	// Give a stray duplicate timer a chance to fire before checking.
	time.Sleep(60 * time.Millisecond)
	assert.Len(t, fs.savedRecords(), 1)
	assert.Equal(t, models.StatusSynced, c.Status())
}

func TestOfflineSaveKeepsValueAndReportsOffline(t *testing.T) {
	fs := newFakeSyncer()
	fs.setSaveOutcome([]models.SyncStatus{models.StatusSyncing, models.StatusOffline}, nil)

	c := New(fs, nil, Config{
		UserID: "u1", FieldID: "canvas_promise", Category: models.CategoryCanvas,
		Debounce: 10 * time.Millisecond,
	})
	require.NoError(t, c.Bind(context.Background()))
	defer c.Close()

	c.OnChange("typed while offline")
	waitSave(t, fs)

	snap := c.Snapshot()
	assert.Equal(t, "typed while offline", snap.Value)
	assert.Equal(t, models.StatusOffline, snap.Status)
	assert.NoError(t, snap.Err)
}

func TestCloseFlushesPendingDebounce(t *testing.T) {
	fs := newFakeSyncer()
	c := New(fs, nil, Config{
		UserID: "u1", FieldID: "canvas_promise", Category: models.CategoryCanvas,
		Debounce: time.Hour,
	})
	require.NoError(t, c.Bind(context.Background()))

	c.OnChange("last words")
	c.Close()

	recs := fs.savedRecords()
	require.Len(t, recs, 1)
	assert.Equal(t, "last words", recs[0].Content)
}

func TestReconnectHealsOfflineField(t *testing.T) {
	fs := newFakeSyncer()
	fs.setSaveOutcome([]models.SyncStatus{models.StatusSyncing, models.StatusOffline}, nil)

	monitor := connectivity.NewMonitor(okPinger{}, testLogger())

	c := New(fs, monitor, Config{
		UserID: "u1", FieldID: "canvas_promise", Category: models.CategoryCanvas,
		Debounce: 10 * time.Millisecond,
	})
	require.NoError(t, c.Bind(context.Background()))
	defer c.Close()

	c.OnChange("draft")
	waitSave(t, fs)
	require.Equal(t, models.StatusOffline, c.Status())

	// Connection returns and the retried write succeeds.
	fs.setSaveOutcome([]models.SyncStatus{models.StatusSyncing, models.StatusSynced}, nil)
	monitor.SetOnline(true)
	rec := waitSave(t, fs)

	assert.Equal(t, "draft", rec.Content)
	assert.Equal(t, models.StatusSynced, c.Status())
	assert.Len(t, fs.savedRecords(), 2)
}

func TestStatusCallbackObservesTransitions(t *testing.T) {
	fs := newFakeSyncer()

	var mu sync.Mutex
	var seen []models.SyncStatus
	c := New(fs, nil, Config{
		UserID: "u1", FieldID: "canvas_promise", Category: models.CategoryCanvas,
		Debounce: 10 * time.Millisecond,
		OnStatus: func(s models.SyncStatus) {
			mu.Lock()
			defer mu.Unlock()
			seen = append(seen, s)
		},
	})
	require.NoError(t, c.Bind(context.Background()))
	defer c.Close()

	c.OnChange("v")
	waitSave(t, fs)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []models.SyncStatus{models.StatusSyncing, models.StatusSynced}, seen)
}

func TestBindSurfacesCorruptPayload(t *testing.T) {
	fs := newFakeSyncer()
	fs.loadContent = `{"truncated":`

	var toasts []error
	c := New(fs, nil, Config{
		UserID: "u1", FieldID: "avatars", Category: models.CategoryAvatarsList,
		Codec:   JSONCodec{},
		OnError: func(err error) { toasts = append(toasts, err) },
	})
	require.NoError(t, c.Bind(context.Background()))

	snap := c.Snapshot()
	assert.Equal(t, models.StatusError, snap.Status)
	assert.Error(t, snap.Err)
	// The raw content is preserved, not discarded.
	assert.Equal(t, `{"truncated":`, snap.Value)
	assert.Len(t, toasts, 1)
}

func TestBindPropagatesStorageFailure(t *testing.T) {
	fs := newFakeSyncer()
	fs.loadErr = errors.New("disk gone")

	c := New(fs, nil, Config{
		UserID: "u1", FieldID: "canvas_promise", Category: models.CategoryCanvas,
	})
	err := c.Bind(context.Background())
	assert.Error(t, err)
	assert.Equal(t, models.StatusError, c.Status())
}

func TestRefreshAdoptsRemoteValue(t *testing.T) {
	fs := newFakeSyncer()
	fs.loadContent = "stale"
	fs.refreshRec = &models.FieldRecord{
		FieldID: "canvas_promise", Category: models.CategoryCanvas,
		Content: "fresh", UpdatedAt: time.Now(),
	}

	c := New(fs, nil, Config{
		UserID: "u1", FieldID: "canvas_promise", Category: models.CategoryCanvas,
	})
	require.NoError(t, c.Bind(context.Background()))
	defer c.Close()

	require.NoError(t, c.Refresh(context.Background()))
	assert.Equal(t, "fresh", c.Value())
	assert.Equal(t, models.StatusSynced, c.Status())
}

func TestTwoControllersIndependentStatuses(t *testing.T) {
	okSync := newFakeSyncer()
	offSync := newFakeSyncer()
	offSync.setSaveOutcome([]models.SyncStatus{models.StatusSyncing, models.StatusOffline}, nil)

	a := New(okSync, nil, Config{
		UserID: "u1", FieldID: "field_a", Category: models.CategoryCanvas,
		Debounce: 10 * time.Millisecond,
	})
	b := New(offSync, nil, Config{
		UserID: "u1", FieldID: "field_b", Category: models.CategoryCanvas,
		Debounce: 10 * time.Millisecond,
	})
	require.NoError(t, a.Bind(context.Background()))
	require.NoError(t, b.Bind(context.Background()))
	defer a.Close()
	defer b.Close()

	a.OnChange("one")
	b.OnChange("two")
	waitSave(t, okSync)
	waitSave(t, offSync)

	assert.Equal(t, models.StatusSynced, a.Status())
	assert.Equal(t, models.StatusOffline, b.Status())
	assert.Equal(t, models.StatusOffline, Combine(a.Status(), b.Status()))
}
