package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/cryptfile/internal/app"
	"github.com/MKhiriev/cryptfile/internal/config"
	"github.com/MKhiriev/cryptfile/internal/crypto"
	"github.com/MKhiriev/cryptfile/internal/logger"
	"github.com/MKhiriev/cryptfile/internal/service"
	"github.com/MKhiriev/cryptfile/internal/store"
	"github.com/MKhiriev/cryptfile/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	ctx := context.Background()

	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cryptfile: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewFileLogger("cryptfile", cfg.App.LogPath)

	var journal store.JournalRepository
	if cfg.Storage.Journal.DSN != "" {
		db, err := store.NewConnectSQLite(ctx, cfg.Storage.Journal, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting journal database")
		}
		defer db.Close()
		journal = store.NewJournalRepository(db, log)
	}

	svc := service.NewCryptService(
		crypto.NewKeyChain(),
		crypto.NewCipher(),
		store.NewContainerFileStore(log),
		journal,
		log,
	)

	cryptApp, err := app.NewApp(cfg, svc, tui.New(), journal, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = cryptApp.Run(ctx); err != nil {
		log.Err(err).Msg("run error")
		fmt.Fprintf(os.Stderr, "cryptfile: %v\n", err)
		os.Exit(1)
	}
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
