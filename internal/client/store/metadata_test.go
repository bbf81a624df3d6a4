package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/mpetrenko/brandsync/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupMetadataDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestMetadataGet_MissingKey(t *testing.T) {
	r := NewMetadataRepository(setupMetadataDB(t))

	_, err := r.Get(context.Background(), "username")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMetadataSet_InsertAndUpdate(t *testing.T) {
	r := NewMetadataRepository(setupMetadataDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "username", []byte("anna")))
	got, err := r.Get(ctx, "username")
	require.NoError(t, err)
	assert.Equal(t, []byte("anna"), got)

	require.NoError(t, r.Set(ctx, "username", []byte("maria")))
	got, err = r.Get(ctx, "username")
	require.NoError(t, err)
	assert.Equal(t, []byte("maria"), got)
}

func TestMetadataClear_RemovesEverything(t *testing.T) {
	r := NewMetadataRepository(setupMetadataDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "username", []byte("anna")))
	require.NoError(t, r.Set(ctx, "user_id", []byte("u-1")))
	require.NoError(t, r.Clear(ctx))

	_, err := r.Get(ctx, "username")
	require.ErrorIs(t, err, common.ErrorNotFound)
	_, err = r.Get(ctx, "user_id")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMetadataStorageFailure_MapsToErrStorageUnavailable(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Close()) // closed handle forces driver errors

	r := NewMetadataRepository(db)
	ctx := context.Background()

	_, err = r.Get(ctx, "username")
	assert.True(t, errors.Is(err, ErrStorageUnavailable))

	err = r.Set(ctx, "username", []byte("x"))
	assert.True(t, errors.Is(err, ErrStorageUnavailable))

	err = r.Clear(ctx)
	assert.True(t, errors.Is(err, ErrStorageUnavailable))
}
