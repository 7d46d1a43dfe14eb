package main

import (
	"context"
	"fmt"

	"github.com/smdv/password-vault/internal/adapter"
	"github.com/smdv/password-vault/internal/config"
	"github.com/smdv/password-vault/internal/crypto"
	handler "github.com/smdv/password-vault/internal/handler/http"
	"github.com/smdv/password-vault/internal/logger"
	"github.com/smdv/password-vault/internal/server"
	"github.com/smdv/password-vault/internal/service"
	"github.com/smdv/password-vault/internal/session"
	"github.com/smdv/password-vault/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("vaultd")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.Connect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	hasher := crypto.NewPasswordHasher()
	cipher, err := crypto.NewSecretCipher()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating secret cipher")
	}

	repos := store.NewRepositories(db, hasher, cipher, log)

	sessions := session.NewStore()
	var persister session.Persister
	if cfg.Session.FilePath != "" {
		persister = session.NewFileStore(cfg.Session.FilePath)
	}

	gateway := service.NewGateway(repos, sessions, persister, log)

	if persister != nil {
		userID, err := persister.Load()
		if err != nil {
			log.Err(err).Msg("error loading persisted session")
		} else if userID > 0 {
			gateway.RestoreSession(userID)
			log.Info().Int64("user_id", userID).Msg("session restored")
		}
	}

	suggester, err := adapter.NewPasswordSuggester(adapter.SuggesterConfig{
		BaseURL: cfg.Suggest.BaseURL,
		APIKey:  cfg.Suggest.APIKey,
		Timeout: cfg.Suggest.Timeout,
		Length:  cfg.Suggest.Length,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating password suggester")
	}

	handlers := handler.NewHandler(gateway, suggester, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
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
