package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-space-sync/internal/adapter"
	"github.com/MKhiriev/go-space-sync/internal/app"
	"github.com/MKhiriev/go-space-sync/internal/config"
	"github.com/MKhiriev/go-space-sync/internal/logger"
	"github.com/MKhiriev/go-space-sync/internal/service"
	"github.com/MKhiriev/go-space-sync/internal/store"
	"github.com/MKhiriev/go-space-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("space-sync").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewFileLogger("space-sync", cfg.Log.File)
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	storages := store.NewStorages(store.NewOSFilesystem(), log)
	services := service.NewServices(adapter.NewHTTPClientFactory(log), storages, cfg.Sync, log)

	application, err := app.NewApp(services, storages, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = application.Run(ctx); err != nil {
		stop()
		log.Fatal().Err(err).Msg("space sync failed")
	}
}
