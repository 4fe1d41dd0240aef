package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-master-password/internal/adapter"
	"github.com/MKhiriev/go-master-password/internal/config"
	"github.com/MKhiriev/go-master-password/internal/logger"
	"github.com/MKhiriev/go-master-password/internal/service"
	"github.com/MKhiriev/go-master-password/internal/store"
	"github.com/MKhiriev/go-master-password/internal/tui"
	"github.com/MKhiriev/go-master-password/internal/workers"
	"github.com/MKhiriev/go-master-password/models"
)

// UI is the interactive front end run by [App.Run].
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	cfg      *config.StructuredConfig
	storages *store.Storages
	services *service.Services
	cleaner  *workers.ClipboardCleaner
	ui       UI

	logger *logger.Logger
}

// NewApp opens the site store and builds the services, the clipboard
// cleaner and the terminal UI.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, clipboard adapter.Clipboard, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	services := service.NewServices(storages, *cfg, buildInfo, log)
	cleaner := workers.NewClipboardCleaner(clipboard, cfg.App.ClipboardClearTimeout, log)

	return &App{
		cfg:      cfg,
		storages: storages,
		services: services,
		cleaner:  cleaner,
		ui:       tui.New(services, cleaner, cfg.App.UserName, log),
		logger:   log,
	}, nil
}

func (a *App) Services() *service.Services {
	return a.services
}

func (a *App) Cleaner() *workers.ClipboardCleaner {
	return a.cleaner
}

// Run shows the terminal UI until the user quits. The clipboard cleaner runs
// alongside it and clears a pending password on the way out.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	background := workers.NewWorkers(a.cleaner)
	background.Run(ctx)

	a.logger.Info().Str("dialect", a.storages.Dialect()).Msg("terminal UI started")

	err := a.ui.Run(ctx)

	cancel()
	background.Wait()

	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("terminal UI: %w", err)
	}
	return nil
}

func (a *App) Close() error {
	return a.storages.Close()
}
