package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log"
	"log/slog"
	"os"

	"github.com/mpetrenko/brandsync/internal/client/config"
	"github.com/mpetrenko/brandsync/internal/client/connectivity"
	"github.com/mpetrenko/brandsync/internal/client/field"
	"github.com/mpetrenko/brandsync/internal/client/remote"
	"github.com/mpetrenko/brandsync/internal/client/services"
	"github.com/mpetrenko/brandsync/internal/client/store"
	"github.com/mpetrenko/brandsync/internal/client/syncer"
	"github.com/mpetrenko/brandsync/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline  Mode = "offline"
	ModeOnline   Mode = "online"
	ModeDisabled Mode = "disabled"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	api     remote.Client
	auth    services.AuthService
	coord   *syncer.Coordinator
	monitor *connectivity.Monitor

	userID   string
	userName string
	Mode     Mode

	controllers map[string]*field.Controller
	stopSync    func()
	reader      *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	handler := slog.New(slog.NewTextHandler(os.Stderr, nil))
	logger := logging.NewSlogLogger(handler)

	db, repo, err := store.Open(ctx, c.LocalDSN)
	if err != nil {
		log.Printf("error initializing local store: %s", err.Error())
		return nil, err
	}

	apiClient, err := remote.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	app := &App{
		config:      c,
		logger:      logger,
		db:          db,
		api:         apiClient,
		auth:        services.NewAuthService(apiClient, db),
		coord:       syncer.New(repo, apiClient, logger),
		monitor:     connectivity.NewMonitor(apiClient, logger),
		controllers: make(map[string]*field.Controller),
		reader:      bufio.NewReader(os.Stdin),
	}

	// The monitor drives the mode indicator and kicks a full sync on every
	// reconnect so queued edits drain without waiting for the next tick.
	app.monitor.Subscribe(func(online bool) {
		if online {
			app.setMode(ModeOnline)
			if app.userID != "" {
				go func() {
					if err := app.coord.SyncAll(context.Background(), app.userID); err != nil {
						app.logger.Warn(context.Background(), "sync after reconnect failed", "error", err)
					}
				}()
			}
		} else {
			app.setMode(ModeOffline)
		}
	})

	return app, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) isLoggedIn() bool {
	return a.userID != ""
}

// Run starts the connectivity probe and the REPL, and tears everything
// down when the user exits: pending debounced saves are flushed, the
// periodic sync loop is stopped and the local store is closed.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.monitor.Run(ctx, a.config.OnlineCheckInterval)

	a.Root(ctx)

	a.closeControllers()
	if a.stopSync != nil {
		a.stopSync()
	}
	a.coord.Close()
	if err := a.auth.Close(ctx); err != nil {
		a.logger.Warn(ctx, "client close failed", "error", err)
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn(ctx, "local store close failed", "error", err)
	}
}

// afterLogin binds a controller for every catalog field and starts the
// periodic sync loop for the authenticated user.
func (a *App) afterLogin(ctx context.Context) {
	for _, spec := range fieldCatalog {
		ctrl := field.New(a.coord, a.monitor, field.Config{
			UserID:   a.userID,
			FieldID:  spec.ID,
			Category: spec.Category,
			Default:  spec.Default,
			Debounce: a.config.DebounceDelay,
			Codec:    spec.Codec,
			OnError: func(err error) {
				log.Printf("Sync problem: %s\n", err.Error())
			},
		})
		if err := ctrl.Bind(ctx); err != nil {
			log.Printf("Field %s unavailable: %s\n", spec.ID, err.Error())
		}
		a.controllers[spec.ID] = ctrl
	}

	a.stopSync = a.coord.StartPeriodicSync(a.userID, a.config.SyncInterval)
}

func (a *App) closeControllers() {
	if a.stopSync != nil {
		a.stopSync()
		a.stopSync = nil
	}
	for id, ctrl := range a.controllers {
		ctrl.Close()
		delete(a.controllers, id)
	}
}
