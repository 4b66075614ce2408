// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// UIMode selects the interactive front-end.
type UIMode string

const (
	// UIConsole is the line-based menu over stdin/stdout.
	UIConsole UIMode = "console"
	// UITUI is the full-screen bubbletea interface.
	UITUI UIMode = "tui"
)

// ClientApp holds front-end and logging settings.
type ClientApp struct {
	UI       UIMode
	LogFile  string
	LogLevel zerolog.Level
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend base URL.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound requests; zero means none.
	RequestTimeout time.Duration
}

// ClientConfig is the validated client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
}

// GetClientConfig builds and validates the client configuration from the
// merged structured configuration. args are the command-line arguments
// without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	level, err := zerolog.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAppConfigs, err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			UI:       UIMode(cfg.App.UI),
			LogFile:  cfg.App.LogFile,
			LogLevel: level,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}

	if err = clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}
