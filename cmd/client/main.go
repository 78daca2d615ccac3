// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-calcufit/internal/adapter"
	"github.com/MKhiriev/go-calcufit/internal/client"
	"github.com/MKhiriev/go-calcufit/internal/config"
	"github.com/MKhiriev/go-calcufit/internal/crypto"
	"github.com/MKhiriev/go-calcufit/internal/logger"
	"github.com/MKhiriev/go-calcufit/internal/service"
	"github.com/MKhiriev/go-calcufit/internal/store"
	"github.com/MKhiriev/go-calcufit/internal/tui"
	"github.com/MKhiriev/go-calcufit/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	for _, line := range buildInfo.Lines() {
		fmt.Println(line)
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("calcufit", cfg.Log.Path, cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	estimator, err := adapter.NewGeminiEstimator(cfg.Estimator, cfg.App.Locale, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create estimator")
	}

	services, err := service.NewClientServices(cfg, storages, estimator, crypto.NewPasswordHasher(cfg.Auth), log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, storages, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
