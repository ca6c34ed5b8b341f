package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/pdfplace/pdfplace/internal/config"
	"github.com/pdfplace/pdfplace/internal/logger"
	"github.com/pdfplace/pdfplace/internal/service"
	"github.com/pdfplace/pdfplace/internal/tui"
	"github.com/pdfplace/pdfplace/internal/workers"
)

// App ties the catalog services, the usage monitor, and the terminal UI
// together for the lifetime of the process.
type App struct {
	services *service.Services
	ui       *tui.TUI
	monitor  *workers.UsageMonitor
	pool     *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.Services, ui *tui.TUI, cfg config.Workers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app: missing dependencies")
	}

	monitor := workers.NewUsageMonitor(services.Catalog, cfg.MonitorInterval, log)

	return &App{
		services: services,
		ui:       ui,
		monitor:  monitor,
		pool:     workers.NewWorkers(monitor),
		logger:   log,
	}, nil
}

// Run restores the previous session, loads the persisted catalog, starts the
// background workers and hands control to the UI. It blocks until the user
// exits.
func (a *App) Run() error {
	ctx := context.Background()

	session, err := a.services.Auth.Restore(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if session.LoggedIn() {
		a.logger.Info().Str("user", session.CurrentUser).Msg("session restored")
	}

	if err = a.services.Catalog.Bootstrap(ctx); err != nil {
		// A damaged catalog should not prevent startup: the user can
		// still log in and rebuild it.
		a.logger.Warn().Err(err).Msg("bootstrap catalog")
	}

	a.pool.Run()
	defer a.monitor.Stop()

	if err = a.ui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return err
	}

	a.logger.Info().Msg("shutting down")
	return nil
}
