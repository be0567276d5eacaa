package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/chatterbox/internal/config"
	"github.com/MKhiriev/chatterbox/internal/crypto"
	handler "github.com/MKhiriev/chatterbox/internal/handler/http"
	"github.com/MKhiriev/chatterbox/internal/logger"
	"github.com/MKhiriev/chatterbox/internal/server"
	"github.com/MKhiriev/chatterbox/internal/service"
	"github.com/MKhiriev/chatterbox/internal/store"
	"github.com/MKhiriev/chatterbox/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("chatterbox-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.Open(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)
	hasher := crypto.NewBcryptHasher(cfg.App.BcryptCost)
	services := service.NewServices(repositories, hasher, cfg, log)

	handlers, err := handler.NewHandler(services, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating http handler")
	}

	background := workers.NewWorkers(repositories, cfg.Workers, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, background, log)
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
