package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/AndresYusty/cat-frontend/internal/client/client"
	"github.com/AndresYusty/cat-frontend/internal/client/config"
	"github.com/AndresYusty/cat-frontend/internal/client/models"
	"github.com/AndresYusty/cat-frontend/internal/client/repositories/metadata"
	"github.com/AndresYusty/cat-frontend/internal/client/services"
	"github.com/AndresYusty/cat-frontend/internal/client/session"
	"github.com/AndresYusty/cat-frontend/internal/filex"
	"github.com/AndresYusty/cat-frontend/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// healthCheckTimeout bounds a single probe of the online watcher.
const healthCheckTimeout = 3 * time.Second

type App struct {
	config      *config.Config
	logger      logging.Logger
	authService services.AuthService
	catService  services.CatService
	reader      *bufio.Reader
	out         io.Writer

	mu       sync.Mutex
	userName string
	mode     Mode

	closers []func() error
}

// NewApp opens the local database, restores the saved session and wires the
// HTTP clients and services described by c.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	if err := filex.EnsureParentDir(c.DatabasePath); err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	store := session.New(metadata.NewSQLiteRepository(db), logger)
	store.Restore(ctx)

	users := client.NewUserClient(c.UserServiceURL, client.WithLogger(logger))
	cats := client.NewCatClient(c.CatAPIURL, c.CatAPIKey, client.WithLogger(logger))

	as, err := services.NewAuthService(users, store, logger, services.WithDemoDelay(c.DemoDelay))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := &App{
		config:      c,
		logger:      logger,
		authService: as,
		catService:  services.NewCatService(cats, logger),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}

	unsubscribe := store.Subscribe(a.onSessionChange)
	a.closers = append(a.closers, func() error { unsubscribe(); return nil }, db.Close)

	return a, nil
}

// Close releases the session subscription and the database.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

func (a *App) onSessionChange(u *models.User) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if u == nil {
		a.userName = ""
		return
	}
	a.userName = u.Username
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(ctx, fmt.Sprintf("switched to %s mode", mode))
	}
}

func (a *App) currentMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) isLoggedIn() bool {
	return a.authService.IsLoggedIn()
}

// checkOnline probes the user service once and records the resulting mode.
func (a *App) checkOnline(ctx context.Context) error {
	pctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	err := a.authService.CheckServerHealth(pctx)
	if err != nil {
		a.setMode(ctx, ModeOffline)
		return err
	}
	a.setMode(ctx, ModeOnline)
	return nil
}

// StartOnlineStatusWatcher probes the user service every interval until ctx
// is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := a.checkOnline(ctx); err != nil && ctx.Err() == nil {
				a.logger.Debug(ctx, "health check failed", "error", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

// Status reports the connectivity of the user service and the session.
func (a *App) Status(ctx context.Context) error {
	err := a.checkOnline(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "User service: offline (%s)\n", errorMessage(err))
	} else {
		fmt.Fprintln(a.out, "User service: online")
	}

	if u := a.authService.CurrentUser(); u != nil {
		fmt.Fprintf(a.out, "Logged in as %s\n", u.Username)
	} else {
		fmt.Fprintln(a.out, "Not logged in")
	}
	return nil
}
