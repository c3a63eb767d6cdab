package main

import (
	"context"
	"fmt"

	"github.com/jurnalresonansi/resonansi-api/internal/adapter"
	"github.com/jurnalresonansi/resonansi-api/internal/blob"
	"github.com/jurnalresonansi/resonansi-api/internal/config"
	myHTTP "github.com/jurnalresonansi/resonansi-api/internal/handler/http"
	"github.com/jurnalresonansi/resonansi-api/internal/logger"
	"github.com/jurnalresonansi/resonansi-api/internal/server"
	"github.com/jurnalresonansi/resonansi-api/internal/service"
	"github.com/jurnalresonansi/resonansi-api/internal/store"
	"github.com/jurnalresonansi/resonansi-api/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("resonansi-api")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("environment", cfg.App.Environment).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	repositories := store.NewRepositories(db, log)

	blobStore, err := blob.NewS3Store(ctx, cfg.Storage.S3, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating object storage client")
	}

	google := adapter.NewGoogleProvider(cfg.OAuth, log)

	services := service.NewServices(repositories, blobStore, google, *cfg, log)
	handler := myHTTP.NewHandler(services, *cfg, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
