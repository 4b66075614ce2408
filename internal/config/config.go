// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied before any other source.
const (
	DefaultHTTPAddress = "http://localhost:8080/api"
	DefaultUI          = "console"
	DefaultLogLevel    = "info"
)

// StructuredConfig is the raw configuration container populated from every
// source before it is merged and narrowed to [ClientConfig].
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds front-end and logging settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// UI selects the front-end: "console" (line based) or "tui".
	// Env: APP_UI
	UI string `env:"UI"`

	// LogFile is the path of the JSON log file. Empty means a "logs" file
	// next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is a zerolog level name (debug, info, warn, error...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Adapter holds settings of the outbound HTTP transport.
type Adapter struct {
	// HTTPAddress is the backend base URL including the API prefix
	// (e.g. "http://localhost:8080/api"). A bare "host:port" gets http://.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request. Zero disables the timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			UI:       DefaultUI,
			LogLevel: DefaultLogLevel,
		},
		Adapter: Adapter{
			HTTPAddress: DefaultHTTPAddress,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources.
// args are the command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv(dotEnvFile).
		withFlags(args).
		withJSON().
		build()
}
