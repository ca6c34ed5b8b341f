package main

import (
	"fmt"

	"github.com/pdfplace/pdfplace/internal/client"
	"github.com/pdfplace/pdfplace/internal/config"
	"github.com/pdfplace/pdfplace/internal/logger"
	"github.com/pdfplace/pdfplace/internal/service"
	"github.com/pdfplace/pdfplace/internal/store"
	"github.com/pdfplace/pdfplace/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("pdfplace")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewServices(storages, cfg, log)
	ui := tui.New(services, log)

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("app run error")
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
