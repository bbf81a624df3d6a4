package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/mpetrenko/brandsync/internal/client/field"
	"github.com/mpetrenko/brandsync/internal/client/models"
)

// statusBadges maps a sync status to its prompt badge.
var statusBadges = map[models.SyncStatus]string{
	models.StatusSynced:  "✓",
	models.StatusSyncing: "…",
	models.StatusOffline: "!",
	models.StatusError:   "✗",
}

// aggregateStatus folds all bound controllers into one badge for the
// prompt: error > syncing > offline > synced.
func (a *App) aggregateStatus() models.SyncStatus {
	statuses := make([]models.SyncStatus, 0, len(a.controllers))
	for _, ctrl := range a.controllers {
		statuses = append(statuses, ctrl.Status())
	}
	return field.Combine(statuses...)
}

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if len(a.controllers) > 0 {
		agg := a.aggregateStatus()
		s = fmt.Sprintf("%s %s%s", s, statusBadges[agg], agg)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root runs the interactive loop until the user exits.
func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to brandsync CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	_ = a.Login(ctx)

	runREPL(ctx, a, a.getStatus, scanner)
}
