package field

import (
	"testing"

	"github.com/mpetrenko/brandsync/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestCombinePriority(t *testing.T) {
	tests := []struct {
		name     string
		statuses []models.SyncStatus
		want     models.SyncStatus
	}{
		{"empty means at rest", nil, models.StatusSynced},
		{"all synced", []models.SyncStatus{models.StatusSynced, models.StatusSynced}, models.StatusSynced},
		{"offline beats synced", []models.SyncStatus{models.StatusSynced, models.StatusOffline}, models.StatusOffline},
		{"syncing beats offline", []models.SyncStatus{models.StatusOffline, models.StatusSyncing, models.StatusSynced}, models.StatusSyncing},
		{"error beats everything", []models.SyncStatus{models.StatusSyncing, models.StatusError, models.StatusOffline}, models.StatusError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Combine(tt.statuses...))
		})
	}
}
