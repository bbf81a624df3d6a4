package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/mpetrenko/brandsync/internal/client/services"
	"github.com/stretchr/testify/require"
)

// fakeAuth implements services.AuthService for unit tests of the auth
// commands that do not need the full app wiring.
type fakeAuth struct {
	registerRet string
	registerErr error
	onlineRet   string
	onlineErr   error
	offlineRet  string
	offlineErr  error
	cleared     bool
}

var _ services.AuthService = (*fakeAuth)(nil)

func (f *fakeAuth) Register(ctx context.Context, username string, password []byte) (string, error) {
	return f.registerRet, f.registerErr
}
func (f *fakeAuth) OnlineLogin(ctx context.Context, username string, password []byte) (string, error) {
	return f.onlineRet, f.onlineErr
}
func (f *fakeAuth) OfflineLogin(ctx context.Context, username string, password []byte) (string, error) {
	return f.offlineRet, f.offlineErr
}
func (f *fakeAuth) Ping(ctx context.Context) error  { return nil }
func (f *fakeAuth) Close(ctx context.Context) error { return nil }
func (f *fakeAuth) ClearOfflineData(ctx context.Context) error {
	f.cleared = true
	return nil
}

func stubInput(t *testing.T, text, password string) {
	t.Helper()
	origText := getSimpleText
	origPassword := getPassword
	getSimpleText = func(r *bufio.Reader, prompt string, w io.Writer) (string, error) {
		return text, nil
	}
	getPassword = func(w io.Writer) ([]byte, error) {
		return []byte(password), nil
	}
	t.Cleanup(func() {
		getSimpleText = origText
		getPassword = origPassword
	})
}

func TestRegister_Success(t *testing.T) {
	stubInput(t, "anna@example.com", "secret")

	fa := &fakeAuth{registerRet: "u-1"}
	app := &App{auth: fa, reader: bufio.NewReader(strings.NewReader(""))}

	require.NoError(t, app.Register(context.Background()))
}

func TestRegister_ErrorPropagates(t *testing.T) {
	stubInput(t, "anna@example.com", "secret")

	fa := &fakeAuth{registerErr: errors.New("login already exists")}
	app := &App{auth: fa, reader: bufio.NewReader(strings.NewReader(""))}

	require.Error(t, app.Register(context.Background()))
}

func TestLogin_RejectedCredentials_NotLoggedIn(t *testing.T) {
	stubInput(t, "anna@example.com", "wrong")

	fa := &fakeAuth{onlineErr: errors.New("unauthorized")}
	app := &App{auth: fa, reader: bufio.NewReader(strings.NewReader(""))}

	require.NoError(t, app.Login(context.Background()))
	require.False(t, app.isLoggedIn())
	require.Empty(t, app.userName)
}

func TestLogout_ClearsSession(t *testing.T) {
	fa := &fakeAuth{}
	app := &App{
		auth:     fa,
		userID:   "u-1",
		userName: "anna@example.com",
	}

	require.NoError(t, app.Logout(context.Background()))
	require.True(t, fa.cleared)
	require.False(t, app.isLoggedIn())
	require.Empty(t, app.userName)
}
