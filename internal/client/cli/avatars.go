package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/mpetrenko/brandsync/internal/client/field"
	"github.com/mpetrenko/brandsync/internal/client/models"
)

const avatarsFieldID = "avatars_list"
const activeAvatarFieldID = "active_avatar_id"

func (a *App) loadAvatars() ([]models.Avatar, *field.Controller, error) {
	ctrl, err := a.controller(avatarsFieldID)
	if err != nil {
		return nil, nil, err
	}
	avatars, err := field.UnmarshalAvatars(ctrl.Value())
	if err != nil {
		fmt.Printf("Avatar list unreadable: %s\n", err.Error())
		return nil, nil, err
	}
	return avatars, ctrl, nil
}

func (a *App) saveAvatars(ctx context.Context, ctrl *field.Controller, avatars []models.Avatar) error {
	content, err := field.MarshalAvatars(avatars)
	if err != nil {
		return err
	}
	ctrl.OnChange(content)
	ctrl.Flush(ctx)
	return nil
}

// Avatars prints the customer avatar list. The active avatar is marked.
func (a *App) Avatars(ctx context.Context) error {
	avatars, _, err := a.loadAvatars()
	if err != nil {
		return err
	}
	if len(avatars) == 0 {
		fmt.Println("No avatars yet, use 'addavatar'")
		return nil
	}

	activeID := ""
	if ctrl, ok := a.controllers[activeAvatarFieldID]; ok {
		activeID = ctrl.Value()
	}

	for _, av := range avatars {
		marker := " "
		if av.ID == activeID {
			marker = "*"
		}
		fmt.Printf("%s %s  %s (%s, %s)\n   pain points: %s\n",
			marker, av.ID, av.Name, av.Age, av.Occupation, av.PainPoints)
	}
	return nil
}

// AddAvatar prompts for the persona details and appends a new avatar to
// the list. The whole list is written back as one field.
func (a *App) AddAvatar(ctx context.Context) error {
	avatars, ctrl, err := a.loadAvatars()
	if err != nil {
		return err
	}

	av := models.Avatar{ID: uuid.NewString()}
	if av.Name, err = getSimpleText(a.reader, "Name", os.Stdout); err != nil {
		return err
	}
	if av.Age, err = getSimpleText(a.reader, "Age", os.Stdout); err != nil {
		return err
	}
	if av.Occupation, err = getSimpleText(a.reader, "Occupation", os.Stdout); err != nil {
		return err
	}
	if av.PainPoints, err = GetMultiline(a.reader, "Pain points", os.Stdout); err != nil {
		return err
	}

	if err := a.saveAvatars(ctx, ctrl, append(avatars, av)); err != nil {
		fmt.Printf("Save failed: %s\n", err.Error())
		return err
	}
	fmt.Printf("Added avatar %s\n", av.ID)
	return nil
}

// DeleteAvatar removes an avatar by id and writes back the shrunken list.
// If the removed avatar was active, the active marker is cleared too.
func (a *App) DeleteAvatar(ctx context.Context, id string) error {
	avatars, ctrl, err := a.loadAvatars()
	if err != nil {
		return err
	}

	kept := avatars[:0]
	for _, av := range avatars {
		if av.ID != id {
			kept = append(kept, av)
		}
	}
	if len(kept) == len(avatars) {
		fmt.Printf("No avatar with id %s\n", id)
		return nil
	}

	if err := a.saveAvatars(ctx, ctrl, kept); err != nil {
		fmt.Printf("Save failed: %s\n", err.Error())
		return err
	}

	if active, ok := a.controllers[activeAvatarFieldID]; ok && active.Value() == id {
		active.OnChange("")
		active.Flush(ctx)
	}

	fmt.Printf("Removed avatar %s\n", id)
	return nil
}
