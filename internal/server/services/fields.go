package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mpetrenko/brandsync/internal/common"
	"github.com/mpetrenko/brandsync/internal/server/models"
	"github.com/mpetrenko/brandsync/internal/server/repositories/repomanager"
)

// FieldService owns the authoritative field store. Writes are last-write
// wins per (user, field): each upsert replaces the row and takes a fresh
// server timestamp.
type FieldService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

// NewFieldService constructs a FieldService.
func NewFieldService(db *sql.DB, m repomanager.RepositoryManager) *FieldService {
	return &FieldService{db: db, repomanager: m, now: time.Now}
}

// Write upserts the field for userID and returns the server-assigned
// update time.
func (s *FieldService) Write(ctx context.Context, userID string, field *models.Field) (time.Time, error) {
	if field.FieldID == "" {
		return time.Time{}, common.ErrorMissingFieldID
	}
	field.UserID = userID

	repo := s.repomanager.Fields(s.db)
	updatedAt, err := repo.Upsert(ctx, field)
	if err != nil {
		return time.Time{}, fmt.Errorf("error writing field: %w", err)
	}
	return updatedAt, nil
}

// Get returns the field or common.ErrorNotFound.
func (s *FieldService) Get(ctx context.Context, userID, fieldID string) (*models.Field, error) {
	if fieldID == "" {
		return nil, common.ErrorMissingFieldID
	}
	repo := s.repomanager.Fields(s.db)
	return repo.Get(ctx, userID, fieldID)
}

// ChangedSince returns the user's fields updated after since, together
// with the server's current time. The client persists that time as the
// high-water mark for its next pull, so it must be taken before the
// query rather than after.
func (s *FieldService) ChangedSince(ctx context.Context, userID string, since time.Time) ([]*models.Field, time.Time, error) {
	serverTime := s.now()

	repo := s.repomanager.Fields(s.db)
	changed, err := repo.SelectChangedSince(ctx, userID, since)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("error selecting fields: %w", err)
	}
	return changed, serverTime, nil
}
