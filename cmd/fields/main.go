package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-fields/internal/client"
	"github.com/MKhiriev/go-pass-fields/internal/config"
	"github.com/MKhiriev/go-pass-fields/internal/logger"
	"github.com/MKhiriev/go-pass-fields/internal/service"
	"github.com/MKhiriev/go-pass-fields/internal/store"
	"github.com/MKhiriev/go-pass-fields/internal/tui"
	"github.com/fatih/color"
)

var errColor = color.New(color.FgRed)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetStructuredConfig()
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		errColor.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	if cfg.App.Lookup == "" {
		printBuildInfo()
	}

	log, closeLog := logger.NewClientLogger("go-pass-fields", cfg.Log.File, cfg.Log.Level)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storeLog := log.GetChildLogger("store")
	fieldStore := store.NewFileFieldStore(cfg.App.FieldsFile, storeLog)
	fieldService := service.NewFieldService(fieldStore, log.GetChildLogger("service"))

	var importer store.FieldStore
	if cfg.App.Import != "" {
		importer = store.NewFileFieldStore(cfg.App.Import, storeLog)
	}

	ui := tui.New(fieldService, cfg.UI, log.GetChildLogger("tui"))

	app, err := client.NewApp(fieldService, ui, importer, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		if errors.Is(err, service.ErrFieldNotFound) {
			errColor.Fprintln(os.Stderr, err)
			stop()
			closeLog()
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("client run error")
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
