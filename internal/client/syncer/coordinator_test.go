package syncer

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mpetrenko/brandsync/internal/client/models"
	"github.com/mpetrenko/brandsync/internal/client/remote"
	"github.com/mpetrenko/brandsync/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeStore is an in-memory Repository.
type fakeStore struct {
	mu       sync.Mutex
	recs     map[string]models.FieldRecord
	lastSync map[string]time.Time
	getErr   error
	putErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		recs:     make(map[string]models.FieldRecord),
		lastSync: make(map[string]time.Time),
	}
}

func (s *fakeStore) key(userID, fieldID string) string { return userID + "\x00" + fieldID }

func (s *fakeStore) Get(ctx context.Context, userID, fieldID string) (*models.FieldRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, false, s.getErr
	}
	rec, ok := s.recs[s.key(userID, fieldID)]
	if !ok {
		return nil, false, nil
	}
	return &rec, true, nil
}

func (s *fakeStore) Put(ctx context.Context, rec *models.FieldRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.putErr != nil {
		return s.putErr
	}
	r := *rec
	r.Pending = true
	s.recs[s.key(rec.UserID, rec.FieldID)] = r
	return nil
}

func (s *fakeStore) PutSynced(ctx context.Context, rec *models.FieldRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.putErr != nil {
		return s.putErr
	}
	r := *rec
	r.Pending = false
	s.recs[s.key(rec.UserID, rec.FieldID)] = r
	return nil
}

func (s *fakeStore) MarkSynced(ctx context.Context, userID, fieldID string, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := s.key(userID, fieldID)
	rec, ok := s.recs[k]
	if !ok || !rec.UpdatedAt.Equal(updatedAt) {
		return nil
	}
	rec.Pending = false
	s.recs[k] = rec
	return nil
}

func (s *fakeStore) GetPending(ctx context.Context, userID string) ([]models.FieldRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.FieldRecord
	for _, rec := range s.recs {
		if rec.UserID == userID && rec.Pending {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *fakeStore) LastSyncAt(ctx context.Context, userID string) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSync[userID], nil
}

func (s *fakeStore) SetLastSyncAt(ctx context.Context, userID string, t time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSync[userID] = t
	return nil
}

func (s *fakeStore) get(userID, fieldID string) (models.FieldRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.recs[s.key(userID, fieldID)]
	return rec, ok
}

// fakeRemote is an in-memory remote.Client with switchable availability.
type fakeRemote struct {
	mu          sync.Mutex
	recs        map[string]models.FieldRecord
	unavailable bool
	fetchCalls  int
	writeCalls  int
	serverTime  time.Time
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		recs:       make(map[string]models.FieldRecord),
		serverTime: time.Now(),
	}
}

func (r *fakeRemote) Close() error { return nil }

func (r *fakeRemote) Register(ctx context.Context, username, password string) (string, error) {
	return "user1", nil
}

func (r *fakeRemote) Login(ctx context.Context, username, password string) (string, error) {
	return "user1", nil
}

func (r *fakeRemote) Ping(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.unavailable {
		return remote.ErrUnavailable
	}
	return nil
}

func (r *fakeRemote) FetchField(ctx context.Context, fieldID string) (*models.FieldRecord, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fetchCalls++
	if r.unavailable {
		return nil, false, remote.ErrUnavailable
	}
	rec, ok := r.recs[fieldID]
	if !ok {
		return nil, false, nil
	}
	return &rec, true, nil
}

func (r *fakeRemote) WriteField(ctx context.Context, rec *models.FieldRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writeCalls++
	if r.unavailable {
		return remote.ErrUnavailable
	}
	stored := *rec
	stored.Pending = false
	r.recs[rec.FieldID] = stored
	return nil
}

func (r *fakeRemote) FetchChangedSince(ctx context.Context, since time.Time) ([]models.FieldRecord, time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.unavailable {
		return nil, time.Time{}, remote.ErrUnavailable
	}
	var out []models.FieldRecord
	for _, rec := range r.recs {
		if rec.UpdatedAt.After(since) {
			out = append(out, rec)
		}
	}
	return out, r.serverTime, nil
}

func (r *fakeRemote) GetDocumentUploadURL(ctx context.Context, fileName string) (string, string, error) {
	return "key", "http://upload", nil
}

func (r *fakeRemote) GetDocumentDownloadURL(ctx context.Context, key string) (string, error) {
	return "http://download", nil
}

func (r *fakeRemote) setUnavailable(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unavailable = v
}

func newTestCoordinator(t *testing.T, st *fakeStore, rc *fakeRemote, opts ...Option) *Coordinator {
	t.Helper()
	c := New(st, rc, testLogger(), opts...)
	t.Cleanup(c.Close)
	return c
}

func TestLoadFieldLocalHitSkipsRemote(t *testing.T) {
	st := newFakeStore()
	rc := newFakeRemote()
	c := newTestCoordinator(t, st, rc)

	require.NoError(t, st.PutSynced(context.Background(), &models.FieldRecord{
		UserID: "u1", FieldID: "canvas_promise", Category: models.CategoryCanvas,
		Content: "we deliver", UpdatedAt: time.Now(),
	}))

	content, status, err := c.LoadField(context.Background(), "u1", "canvas_promise", "")
	require.NoError(t, err)
	assert.Equal(t, "we deliver", content)
	assert.Equal(t, models.StatusSynced, status)
	assert.Equal(t, 0, rc.fetchCalls)
}

func TestLoadFieldPendingRowReportsOffline(t *testing.T) {
	st := newFakeStore()
	rc := newFakeRemote()
	c := newTestCoordinator(t, st, rc)

	require.NoError(t, st.Put(context.Background(), &models.FieldRecord{
		UserID: "u1", FieldID: "canvas_promise", Category: models.CategoryCanvas,
		Content: "unsent edit", UpdatedAt: time.Now(),
	}))

	content, status, err := c.LoadField(context.Background(), "u1", "canvas_promise", "")
	require.NoError(t, err)
	assert.Equal(t, "unsent edit", content)
	assert.Equal(t, models.StatusOffline, status)
}

func TestLoadFieldMissFetchesOnceAndBackfills(t *testing.T) {
	st := newFakeStore()
	rc := newFakeRemote()
	c := newTestCoordinator(t, st, rc)

	rc.recs["avatar_age"] = models.FieldRecord{
		FieldID: "avatar_age", Category: models.CategoryAvatar,
		Content: "34", UpdatedAt: time.Now(),
	}

	content, status, err := c.LoadField(context.Background(), "u1", "avatar_age", "")
	require.NoError(t, err)
	assert.Equal(t, "34", content)
	assert.Equal(t, models.StatusSynced, status)
	assert.Equal(t, 1, rc.fetchCalls)

	// Second load is served locally.
	content, _, err = c.LoadField(context.Background(), "u1", "avatar_age", "")
	require.NoError(t, err)
	assert.Equal(t, "34", content)
	assert.Equal(t, 1, rc.fetchCalls)
}

func TestLoadFieldRemoteFailureFallsBack(t *testing.T) {
	st := newFakeStore()
	rc := newFakeRemote()
	rc.setUnavailable(true)
	c := newTestCoordinator(t, st, rc)

	content, status, err := c.LoadField(context.Background(), "u1", "avatar_age", "n/a")
	require.NoError(t, err)
	assert.Equal(t, "n/a", content)
	assert.Equal(t, models.StatusOffline, status)
}

func TestLoadFieldRequiresFieldID(t *testing.T) {
	c := newTestCoordinator(t, newFakeStore(), newFakeRemote())

	_, status, err := c.LoadField(context.Background(), "u1", "", "x")
	assert.Error(t, err)
	assert.Equal(t, models.StatusError, status)
}

func TestSaveFieldSuccess(t *testing.T) {
	st := newFakeStore()
	rc := newFakeRemote()
	c := newTestCoordinator(t, st, rc)

	var statuses []models.SyncStatus
	err := c.SaveField(context.Background(), &models.FieldRecord{
		UserID: "u1", FieldID: "canvas_promise", Category: models.CategoryCanvas,
		Content: "we deliver",
	}, func(s models.SyncStatus) { statuses = append(statuses, s) })

	require.NoError(t, err)
	assert.Equal(t, []models.SyncStatus{models.StatusSyncing, models.StatusSynced}, statuses)

	rec, ok := st.get("u1", "canvas_promise")
	require.True(t, ok)
	assert.False(t, rec.Pending)
	assert.Equal(t, 1, rc.writeCalls)
}

func TestSaveFieldOfflineKeepsLocalPending(t *testing.T) {
	st := newFakeStore()
	rc := newFakeRemote()
	rc.setUnavailable(true)
	c := newTestCoordinator(t, st, rc)

	var statuses []models.SyncStatus
	err := c.SaveField(context.Background(), &models.FieldRecord{
		UserID: "u1", FieldID: "canvas_promise", Category: models.CategoryCanvas,
		Content: "we deliver",
	}, func(s models.SyncStatus) { statuses = append(statuses, s) })

	// A network failure is not an error: the edit is durable locally.
	require.NoError(t, err)
	assert.Equal(t, []models.SyncStatus{models.StatusSyncing, models.StatusOffline}, statuses)

	rec, ok := st.get("u1", "canvas_promise")
	require.True(t, ok)
	assert.Equal(t, "we deliver", rec.Content)
	assert.True(t, rec.Pending)
}

func TestSaveFieldValidation(t *testing.T) {
	c := newTestCoordinator(t, newFakeStore(), newFakeRemote())

	err := c.SaveField(context.Background(), &models.FieldRecord{
		UserID: "u1", Category: models.CategoryCanvas, Content: "x",
	}, nil)
	assert.Error(t, err)

	err = c.SaveField(context.Background(), &models.FieldRecord{
		UserID: "u1", FieldID: "f1", Category: "bogus", Content: "x",
	}, nil)
	assert.Error(t, err)
}

func TestRefreshOverwritesLocal(t *testing.T) {
	st := newFakeStore()
	rc := newFakeRemote()
	c := newTestCoordinator(t, st, rc)

	require.NoError(t, st.PutSynced(context.Background(), &models.FieldRecord{
		UserID: "u1", FieldID: "avatar_age", Category: models.CategoryAvatar,
		Content: "old", UpdatedAt: time.Now().Add(-time.Hour),
	}))
	rc.recs["avatar_age"] = models.FieldRecord{
		FieldID: "avatar_age", Category: models.CategoryAvatar,
		Content: "35", UpdatedAt: time.Now(),
	}

	rec, status, err := c.Refresh(context.Background(), "u1", "avatar_age")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "35", rec.Content)
	assert.Equal(t, models.StatusSynced, status)

	local, ok := st.get("u1", "avatar_age")
	require.True(t, ok)
	assert.Equal(t, "35", local.Content)
}

func TestRefreshOfflineLeavesLocalUntouched(t *testing.T) {
	st := newFakeStore()
	rc := newFakeRemote()
	rc.setUnavailable(true)
	c := newTestCoordinator(t, st, rc)

	require.NoError(t, st.PutSynced(context.Background(), &models.FieldRecord{
		UserID: "u1", FieldID: "avatar_age", Category: models.CategoryAvatar,
		Content: "34", UpdatedAt: time.Now(),
	}))

	rec, status, err := c.Refresh(context.Background(), "u1", "avatar_age")
	require.NoError(t, err)
	assert.Nil(t, rec)
	assert.Equal(t, models.StatusOffline, status)

	local, _ := st.get("u1", "avatar_age")
	assert.Equal(t, "34", local.Content)
}

func TestSyncAllPushesPendingAndPullsChanges(t *testing.T) {
	st := newFakeStore()
	rc := newFakeRemote()
	c := newTestCoordinator(t, st, rc)

	// One queued local edit, one remote-only change.
	require.NoError(t, st.Put(context.Background(), &models.FieldRecord{
		UserID: "u1", FieldID: "canvas_promise", Category: models.CategoryCanvas,
		Content: "queued", UpdatedAt: time.Now(),
	}))
	rc.recs["avatar_age"] = models.FieldRecord{
		FieldID: "avatar_age", Category: models.CategoryAvatar,
		Content: "35", UpdatedAt: time.Now(),
	}

	require.NoError(t, c.SyncAll(context.Background(), "u1"))

	pushed, ok := st.get("u1", "canvas_promise")
	require.True(t, ok)
	assert.False(t, pushed.Pending)
	remoteRec := rc.recs["canvas_promise"]
	assert.Equal(t, "queued", remoteRec.Content)

	pulled, ok := st.get("u1", "avatar_age")
	require.True(t, ok)
	assert.Equal(t, "35", pulled.Content)
	assert.False(t, pulled.Pending)

	last, err := st.LastSyncAt(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, last.Equal(rc.serverTime))
}

func TestSyncAllSkipsNewerLocalEdit(t *testing.T) {
	st := newFakeStore()
	rc := newFakeRemote()
	c := newTestCoordinator(t, st, rc)

	// Remote carries a change for a key whose local copy is newer; the
	// pull must not roll the local value back.
	rc.recs["avatar_age"] = models.FieldRecord{
		FieldID: "avatar_age", Category: models.CategoryAvatar,
		Content: "remote", UpdatedAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, st.Put(context.Background(), &models.FieldRecord{
		UserID: "u1", FieldID: "other_field", Category: models.CategoryCanvas,
		Content: "queued", UpdatedAt: time.Now(),
	}))
	require.NoError(t, st.PutSynced(context.Background(), &models.FieldRecord{
		UserID: "u1", FieldID: "avatar_age", Category: models.CategoryAvatar,
		Content: "local newer", UpdatedAt: time.Now().Add(2 * time.Hour),
	}))

	require.NoError(t, c.SyncAll(context.Background(), "u1"))

	local, _ := st.get("u1", "avatar_age")
	assert.Equal(t, "local newer", local.Content)
}

func TestSyncAllRetriesTransientWriteFailure(t *testing.T) {
	st := newFakeStore()
	rc := newFakeRemote()
	rc.setUnavailable(true)
	c := newTestCoordinator(t, st, rc)

	require.NoError(t, st.Put(context.Background(), &models.FieldRecord{
		UserID: "u1", FieldID: "canvas_promise", Category: models.CategoryCanvas,
		Content: "queued", UpdatedAt: time.Now(),
	}))

	err := c.SyncAll(context.Background(), "u1")
	assert.Error(t, err)
	// Initial attempt plus retries.
	assert.Equal(t, 3, rc.writeCalls)

	rec, _ := st.get("u1", "canvas_promise")
	assert.True(t, rec.Pending)
}

func TestRemoteFirstPolicyAdoptsRemoteValue(t *testing.T) {
	st := newFakeStore()
	rc := newFakeRemote()

	var conflicts []Conflict
	c := newTestCoordinator(t, st, rc,
		WithConflictPolicy(PolicyRemoteFirst),
		WithConflictFunc(func(cf Conflict) (string, bool) {
			conflicts = append(conflicts, cf)
			return "", false
		}))

	rc.recs["canvas_promise"] = models.FieldRecord{
		FieldID: "canvas_promise", Category: models.CategoryCanvas,
		Content: "remote wins", UpdatedAt: time.Now(),
	}

	var statuses []models.SyncStatus
	err := c.SaveField(context.Background(), &models.FieldRecord{
		UserID: "u1", FieldID: "canvas_promise", Category: models.CategoryCanvas,
		Content: "local attempt",
	}, func(s models.SyncStatus) { statuses = append(statuses, s) })

	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "local attempt", conflicts[0].Local)
	assert.Equal(t, "remote wins", conflicts[0].Remote)
	assert.Equal(t, models.StatusSynced, statuses[len(statuses)-1])

	local, _ := st.get("u1", "canvas_promise")
	assert.Equal(t, "remote wins", local.Content)
	assert.False(t, local.Pending)
}

func TestManualPolicyWithoutDecisionStaysPending(t *testing.T) {
	st := newFakeStore()
	rc := newFakeRemote()
	c := newTestCoordinator(t, st, rc, WithConflictPolicy(PolicyManual))

	rc.recs["canvas_promise"] = models.FieldRecord{
		FieldID: "canvas_promise", Category: models.CategoryCanvas,
		Content: "remote", UpdatedAt: time.Now(),
	}

	var statuses []models.SyncStatus
	err := c.SaveField(context.Background(), &models.FieldRecord{
		UserID: "u1", FieldID: "canvas_promise", Category: models.CategoryCanvas,
		Content: "local",
	}, func(s models.SyncStatus) { statuses = append(statuses, s) })

	require.NoError(t, err)
	assert.Equal(t, models.StatusOffline, statuses[len(statuses)-1])

	local, _ := st.get("u1", "canvas_promise")
	assert.Equal(t, "local", local.Content)
	assert.True(t, local.Pending)
}

func TestStartPeriodicSyncStops(t *testing.T) {
	st := newFakeStore()
	rc := newFakeRemote()
	c := newTestCoordinator(t, st, rc)

	require.NoError(t, st.Put(context.Background(), &models.FieldRecord{
		UserID: "u1", FieldID: "canvas_promise", Category: models.CategoryCanvas,
		Content: "queued", UpdatedAt: time.Now(),
	}))

	stop := c.StartPeriodicSync("u1", 10*time.Millisecond)

	require.Eventually(t, func() bool {
		rec, ok := st.get("u1", "canvas_promise")
		return ok && !rec.Pending
	}, 2*time.Second, 10*time.Millisecond)

	stop()
}
