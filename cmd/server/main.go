package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"devjournal/internal/ai"
	"devjournal/internal/config"
	"devjournal/internal/handler/http"
	"devjournal/internal/identity"
	"devjournal/internal/logger"
	"devjournal/internal/server"
	"devjournal/internal/service"
	"devjournal/internal/store"
	"devjournal/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// a .env file is optional; real deployments set the environment directly
	_ = godotenv.Load()

	log := logger.NewLogger("devjournal-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB, cfg.Storage.DB.Driver); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	summarizer, err := ai.NewSummarizer(ctx, cfg.AI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating summarizer")
	}
	defer summarizer.Close()

	repos := store.NewRepositories(db, log)
	verifier := identity.NewVerifier(cfg.Auth, log)
	services := service.NewServices(repos, summarizer, log)
	handler := http.NewHandler(services, verifier, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
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
