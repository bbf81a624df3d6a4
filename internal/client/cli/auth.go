package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/mpetrenko/brandsync/internal/client/remote"
	"github.com/mpetrenko/brandsync/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for an email and password and attempts to create
// a new account via the AuthService.
//
// On success it prints "Success!" and returns nil. The password byte slice
// is securely wiped before returning. Any I/O or service error is returned
// unchanged.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.auth.Register(ctx, userName, password); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Success! You can now log in.")
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
//
// The method first attempts an online login. If the server is unavailable
// (errors.Is(err, remote.ErrUnavailable)), it falls back to offline login
// against the locally cached session. On success it sets a.userID, binds the
// field controllers and updates the connectivity Mode:
//   - ModeOnline if online login succeeds,
//   - ModeOffline if offline login succeeds,
//   - ModeDisabled if both fail.
//
// The password is securely wiped before returning. A nil error does not
// necessarily imply ModeOnline; inspect App.Mode for the final state.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	var (
		userID string
		mode   Mode
	)

	userID, err = a.auth.OnlineLogin(ctx, userName, password)
	if err != nil {
		if errors.Is(err, remote.ErrUnavailable) {
			log.Printf("Server unavailable, trying offline login...")
			userID, err = a.auth.OfflineLogin(ctx, userName, password)
			if err != nil {
				log.Printf("Offline login unsuccessful: %s", err.Error())
				mode = ModeDisabled
			} else {
				log.Printf("Offline login successful")
				mode = ModeOffline
			}
		} else {
			log.Printf("Login unsuccessful: %s", err.Error())
		}
	} else {
		log.Printf("Login successful")
		mode = ModeOnline
	}

	a.userID = userID
	if userID != "" {
		a.userName = userName
	}
	a.setMode(mode)

	if a.isLoggedIn() {
		a.afterLogin(ctx)
	}
	return nil
}

// Logout flushes and detaches all field controllers, clears locally cached
// session data and forgets the in-memory user id.
func (a *App) Logout(ctx context.Context) error {
	a.closeControllers()
	if err := a.auth.ClearOfflineData(ctx); err != nil {
		return err
	}
	a.userID = ""
	a.userName = ""
	return nil
}
