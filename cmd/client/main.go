package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/dcms-sync/internal/adapter"
	"github.com/MKhiriev/dcms-sync/internal/client"
	"github.com/MKhiriev/dcms-sync/internal/config"
	"github.com/MKhiriev/dcms-sync/internal/logger"
	"github.com/MKhiriev/dcms-sync/internal/service"
	"github.com/MKhiriev/dcms-sync/internal/store"
	"github.com/MKhiriev/dcms-sync/internal/tui"
	"github.com/MKhiriev/dcms-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	// a missing .env is normal on installed origins
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "error loading .env file: %v\n", err)
	}

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("dcms-sync-client-"+cfg.App.Origin, cfg.App.LogFile)
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level")
	}
	log.Info().Str("build", buildInfo.String()).Str("origin", cfg.App.Origin).Msg("client starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverAdapter, err := adapter.NewHTTPSyncAdapter(cfg.Adapter, cfg.App, log.WithComponent("adapter"))
	if err != nil {
		log.Fatal().Err(err).Msg("create sync adapter")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, serverAdapter, cfg.Sync, log)

	var ui client.UI
	if !cfg.App.Headless {
		ui = tui.New(services.SyncEngine, buildInfo, cfg.App.Origin, log.WithComponent("tui"))
	}

	app, err := client.NewApp(services, localStorage, ui, cfg.App.Headless, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "client error: %v\n", err)
		os.Exit(1)
	}
}
