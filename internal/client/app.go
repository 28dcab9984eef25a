package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/dcms-sync/internal/logger"
	"github.com/MKhiriev/dcms-sync/internal/service"
	"github.com/MKhiriev/dcms-sync/internal/store"
)

type App struct {
	services *service.ClientServices
	storage  store.LocalStorage
	ui       UI
	headless bool

	logger *logger.Logger
}

// NewApp wires the client. ui may be nil only when headless is true.
func NewApp(services *service.ClientServices, storage store.LocalStorage, ui UI, headless bool, logger *logger.Logger) (*App, error) {
	if ui == nil && !headless {
		return nil, errNoUI
	}

	logger.Debug().Bool("headless", headless).Msg("client app created")
	return &App{
		services: services,
		storage:  storage,
		ui:       ui,
		headless: headless,
		logger:   logger,
	}, nil
}

// Run starts the engine and blocks until the dashboard exits, the headless
// refresh completes or ctx is cancelled.
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		if closeErr := a.storage.Close(); closeErr != nil {
			a.logger.Err(closeErr).Str("func", "*App.Run").Msg("closing local storage failed")
			err = errors.Join(err, closeErr)
		}
	}()

	engine := a.services.SyncEngine
	if err = engine.Start(ctx); err != nil {
		return fmt.Errorf("start sync engine: %w", err)
	}
	defer engine.Stop()

	if a.headless {
		a.logger.Info().Msg("running one-shot refresh")
		engine.Refresh(ctx)

		status := engine.Status()
		a.logger.Info().
			Str("state", status.State.String()).
			Int("dirty", len(status.Dirty)).
			Msg("refresh finished")
		return nil
	}

	if err = a.ui.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
