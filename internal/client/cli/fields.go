package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mpetrenko/brandsync/internal/client/field"
	"github.com/mpetrenko/brandsync/internal/client/models"
)

// catalogEntry describes one editable brand field of the coaching program.
type catalogEntry struct {
	ID       string
	Title    string
	Category models.Category
	Default  string
	Codec    field.Codec
}

// fieldCatalog is the fixed set of fields the CLI binds on login. The
// avatar list is stored as a single JSON field; everything else is plain
// text.
var fieldCatalog = []catalogEntry{
	{ID: "canvas_niche", Title: "Niche", Category: models.CategoryCanvas},
	{ID: "canvas_mission", Title: "Mission statement", Category: models.CategoryCanvas},
	{ID: "canvas_promise", Title: "Brand promise", Category: models.CategoryCanvas},
	{ID: "canvas_tone_of_voice", Title: "Tone of voice", Category: models.CategoryCanvas},
	{ID: "avatar_demographics_age", Title: "Avatar age", Category: models.CategoryAvatar},
	{ID: "avatar_pain_points", Title: "Avatar pain points", Category: models.CategoryAvatar},
	{ID: activeAvatarFieldID, Title: "Active avatar", Category: models.CategoryAvatar},
	{ID: avatarsFieldID, Title: "Customer avatars", Category: models.CategoryAvatarsList, Default: "[]", Codec: field.JSONCodec{}},
	{ID: "settings_display_name", Title: "Display name", Category: models.CategorySettings},
}

var errUnknownField = errors.New("unknown field")

func (a *App) controller(fieldID string) (*field.Controller, error) {
	ctrl, ok := a.controllers[fieldID]
	if !ok {
		fmt.Printf("Unknown field %q, see 'fields' for the list\n", fieldID)
		return nil, errUnknownField
	}
	return ctrl, nil
}

// Fields prints the catalog with each field's current sync badge.
func (a *App) Fields(ctx context.Context) error {
	for _, spec := range fieldCatalog {
		ctrl, ok := a.controllers[spec.ID]
		if !ok {
			continue
		}
		snap := ctrl.Snapshot()
		fmt.Printf("%s %-24s %s\n", statusBadges[snap.Status], spec.ID, spec.Title)
	}
	return nil
}

// Edit prompts for a new value and saves it through the field controller.
// The value is visible and durable locally immediately; the remote write
// happens in the background and its outcome shows up in the status badge.
func (a *App) Edit(ctx context.Context, fieldID string) error {
	ctrl, err := a.controller(fieldID)
	if err != nil {
		return err
	}

	snap := ctrl.Snapshot()
	fmt.Printf("Current value:\n%s\n", snap.Value)

	value, err := GetMultiline(a.reader, "Enter new value", os.Stdout)
	if err != nil {
		return err
	}

	ctrl.OnChange(value)
	ctrl.Flush(ctx)

	fmt.Printf("Saved (%s)\n", ctrl.Status())
	return nil
}

// Show prints a field's value, status and last error if any.
func (a *App) Show(ctx context.Context, fieldID string) error {
	ctrl, err := a.controller(fieldID)
	if err != nil {
		return err
	}

	snap := ctrl.Snapshot()
	fmt.Printf("%s [%s %s]\n%s\n", fieldID, statusBadges[snap.Status], snap.Status, snap.Value)
	if snap.Err != nil {
		fmt.Printf("Last error: %s\n", snap.Err.Error())
	}
	return nil
}

// Refresh re-fetches one field (or all bound fields when fieldID is empty)
// from the server, adopting the remote value on success.
func (a *App) Refresh(ctx context.Context, fieldID string) error {
	if fieldID != "" {
		ctrl, err := a.controller(fieldID)
		if err != nil {
			return err
		}
		if err := ctrl.Refresh(ctx); err != nil {
			fmt.Printf("Refresh failed: %s\n", err.Error())
			return err
		}
		fmt.Printf("Refreshed %s (%s)\n", fieldID, ctrl.Status())
		return nil
	}

	for id, ctrl := range a.controllers {
		if err := ctrl.Refresh(ctx); err != nil {
			fmt.Printf("Refresh of %s failed: %s\n", id, err.Error())
		}
	}
	fmt.Println("Done")
	return nil
}

// Sync pushes all queued local edits and pulls remote changes.
func (a *App) Sync(ctx context.Context) error {
	if err := a.coord.SyncAll(ctx, a.userID); err != nil {
		fmt.Printf("Sync failed: %s\n", err.Error())
		return err
	}
	fmt.Println("Sync complete")
	return nil
}
