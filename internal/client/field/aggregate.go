package field

import "github.com/mpetrenko/brandsync/internal/client/models"

// Combine reduces the statuses of several fields into one indicator for a
// screen-level badge. Priority: error beats syncing beats offline beats
// synced, so the badge always shows the most urgent condition present.
// No statuses means everything is at rest.
func Combine(statuses ...models.SyncStatus) models.SyncStatus {
	rank := func(s models.SyncStatus) int {
		switch s {
		case models.StatusError:
			return 3
		case models.StatusSyncing:
			return 2
		case models.StatusOffline:
			return 1
		default:
			return 0
		}
	}

	combined := models.StatusSynced
	for _, s := range statuses {
		if rank(s) > rank(combined) {
			combined = s
		}
	}
	return combined
}
