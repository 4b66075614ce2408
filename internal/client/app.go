// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/shop-console/internal/config"
	"github.com/MKhiriev/shop-console/internal/console"
	"github.com/MKhiriev/shop-console/internal/handler"
	"github.com/MKhiriev/shop-console/internal/logger"
	"github.com/MKhiriev/shop-console/internal/tui"
	"github.com/MKhiriev/shop-console/models"
)

type App struct {
	ui     UI
	mode   config.UIMode
	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewUI builds the front-end selected by mode. The console reads in and
// writes out; the terminal UI owns the terminal.
func NewUI(mode config.UIMode, ops handler.Operations, buildInfo models.AppBuildInfo, in io.Reader, out io.Writer) (UI, error) {
	switch mode {
	case config.UIConsole:
		return console.New(ops, in, out), nil
	case config.UITUI:
		return tui.New(ops, buildInfo), nil
	default:
		return nil, fmt.Errorf("%w: unknown ui mode %q", config.ErrInvalidAppConfigs, mode)
	}
}

func NewApp(ui UI, mode config.UIMode, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, fmt.Errorf("nil ui")
	}
	return &App{ui: ui, mode: mode, logger: logger}, nil
}

// Run attaches the logger to ctx and runs the front-end until it returns.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	a.logger.Info().Str("ui", string(a.mode)).Msg("client started")
	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui stopped: %w", err)
	}
	a.logger.Info().Msg("client stopped")

	return nil
}
