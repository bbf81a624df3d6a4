package fields

import (
	"context"
	"time"

	"github.com/mpetrenko/brandsync/internal/server/models"
)

type Repository interface {
	// Upsert writes the field's value and returns the server-assigned
	// update time.
	Upsert(ctx context.Context, field *models.Field) (time.Time, error)

	// Get returns the field or common.ErrorNotFound.
	Get(ctx context.Context, userID, fieldID string) (*models.Field, error)

	// SelectChangedSince returns the user's fields updated strictly after
	// since.
	SelectChangedSince(ctx context.Context, userID string, since time.Time) ([]*models.Field, error)
}
