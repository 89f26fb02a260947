// Package cli exposes the tenant client as cobra commands.
package cli

import (
	"fmt"
	"time"

	"github.com/handygo/tenant-client/internal/config"
	"github.com/handygo/tenant-client/internal/database"
	"github.com/handygo/tenant-client/internal/sample"
	"github.com/handygo/tenant-client/internal/services"
	"github.com/handygo/tenant-client/internal/session"
	"github.com/handygo/tenant-client/internal/transport"
)

// App is everything the commands need.
type App struct {
	Auth     *services.AuthService
	Requests *services.RequestService
	Reviews  *services.ReviewService
	Now      func() time.Time
}

// NewApp wires services over a transport and keychain.
func NewApp(api services.API, keychain *session.Keychain, repo *sample.Repository) *App {
	return &App{
		Auth:     services.NewAuthService(api, keychain, repo),
		Requests: services.NewRequestService(api, repo),
		Reviews:  services.NewReviewService(api, keychain, repo),
		Now:      time.Now,
	}
}

// Bootstrap opens the credential store described by cfg and builds the App.
// The returned func closes the store.
func Bootstrap(cfg *config.Config) (*App, func() error, error) {
	db, err := database.Open(cfg.SessionDBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open session store: %w", err)
	}
	closeDB := func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	gormStore, err := session.NewGormStore(db)
	if err != nil {
		_ = closeDB()
		return nil, nil, err
	}

	var store session.Store = gormStore
	if cfg.SessionSecret != "" {
		store = session.NewSealedStore(gormStore, cfg.SessionSecret)
	}
	keychain := session.NewKeychain(store)

	app := NewApp(transport.New(cfg, keychain), keychain, sample.NewRepository(nil))
	return app, closeDB, nil
}
