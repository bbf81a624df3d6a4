// Package services contains application services for the brandsync client.
// This file defines the authentication service: online/offline login,
// registration, liveness probe, and housekeeping of locally cached session
// data that makes offline work possible after a first successful login.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mpetrenko/brandsync/internal/client/remote"
	"github.com/mpetrenko/brandsync/internal/client/store"
	"github.com/mpetrenko/brandsync/internal/common"
	"github.com/mpetrenko/brandsync/internal/dbx"
	"golang.org/x/crypto/bcrypt"
)

// ErrLocalDataNotAvailable indicates no cached session exists on this
// device, so offline login is impossible until the user logs in online once.
var ErrLocalDataNotAvailable = errors.New("local auth data not available")

// Metadata keys for the cached session.
const (
	metaUsername     = "username"
	metaUserID       = "user_id"
	metaPasswordHash = "password_hash"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - OnlineLogin: authenticate against the server and cache session data
//     locally so subsequent offline logins work.
//   - OfflineLogin: verify credentials against the locally cached hash and
//     resume the cached user id without any network I/O.
//   - Register: create a new account on the server.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
//   - ClearOfflineData: wipe the locally cached session.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	OnlineLogin(ctx context.Context, username string, password []byte) (string, error)
	OfflineLogin(ctx context.Context, username string, password []byte) (string, error)
	Register(ctx context.Context, username string, password []byte) (string, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
	ClearOfflineData(ctx context.Context) error
}

// authService is the concrete AuthService backed by a remote Client
// and the local store for cached session data.
type authService struct {
	client remote.Client
	db     *sql.DB
}

// NewAuthService constructs an AuthService bound to the given API client and DB.
func NewAuthService(client remote.Client, db *sql.DB) AuthService {
	return &authService{client: client, db: db}
}

func (a *authService) getMetadataRepo() *store.MetadataRepository {
	return store.NewMetadataRepository(a.db)
}

// OnlineLogin authenticates against the server, caches the session
// (username, user id, password hash) for offline logins, and returns the
// user id.
func (a *authService) OnlineLogin(ctx context.Context, username string, password []byte) (string, error) {
	userID, err := a.client.Login(ctx, username, string(password))
	if err != nil {
		return "", fmt.Errorf("login error: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash error: %w", err)
	}

	if err := a.saveOfflineData(ctx, username, userID, hash); err != nil {
		return "", fmt.Errorf("offline data saving error: %w", err)
	}
	return userID, nil
}

// OfflineLogin verifies (username, password) against the locally cached
// session and returns the cached user id. If no session is cached, returns
// ErrLocalDataNotAvailable; if verification fails, common.ErrorUnauthorized.
func (a *authService) OfflineLogin(ctx context.Context, username string, password []byte) (string, error) {
	metadataRepo := a.getMetadataRepo()

	savedUsername, err := metadataRepo.Get(ctx, metaUsername)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", ErrLocalDataNotAvailable
		}
		return "", err
	}
	if string(savedUsername) != username {
		return "", common.ErrorUnauthorized
	}

	savedHash, err := metadataRepo.Get(ctx, metaPasswordHash)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", ErrLocalDataNotAvailable
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword(savedHash, password); err != nil {
		return "", common.ErrorUnauthorized
	}

	savedUserID, err := metadataRepo.Get(ctx, metaUserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", ErrLocalDataNotAvailable
		}
		return "", err
	}
	return string(savedUserID), nil
}

// saveOfflineData persists the session data required for offline login in
// a single transaction.
func (a *authService) saveOfflineData(ctx context.Context, username, userID string, hash []byte) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		metadataRepo := store.NewMetadataRepository(tx)

		if err := metadataRepo.Set(ctx, metaUsername, []byte(username)); err != nil {
			return err
		}
		if err := metadataRepo.Set(ctx, metaUserID, []byte(userID)); err != nil {
			return err
		}
		if err := metadataRepo.Set(ctx, metaPasswordHash, hash); err != nil {
			return err
		}
		return nil
	})
}

// Register creates a new account on the server and returns the new user id.
func (a *authService) Register(ctx context.Context, username string, password []byte) (string, error) {
	return a.client.Register(ctx, username, string(password))
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

// ClearOfflineData wipes the locally cached session (e.g., on logout).
func (a *authService) ClearOfflineData(ctx context.Context) error {
	metadataRepo := a.getMetadataRepo()
	return metadataRepo.Clear(ctx)
}
