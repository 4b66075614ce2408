// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/shop-console/internal/adapter"
	"github.com/MKhiriev/shop-console/internal/client"
	"github.com/MKhiriev/shop-console/internal/config"
	"github.com/MKhiriev/shop-console/internal/handler"
	"github.com/MKhiriev/shop-console/internal/logger"
	"github.com/MKhiriev/shop-console/internal/service"
	"github.com/MKhiriev/shop-console/models"
	"github.com/rs/zerolog"
)

const appName = "shop-client"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		logger.NewClientLogger(appName, "", zerolog.InfoLevel).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger(appName, cfg.App.LogFile, cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services, err := service.NewClientServices(serverAdapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	ui, err := client.NewUI(cfg.App.UI, handler.NewHandler(services), buildInfo, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, cfg.App.UI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
