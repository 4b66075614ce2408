// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses the client command-line flags from args.
//
// Flags:
//
//	-a backend base URL (e.g. http://localhost:8080/api)
//	-request-timeout request timeout (e.g. "30s"); 0 disables it
//	-ui front-end: console or tui
//	-log-file log file path
//	-log-level log level (debug, info, warn, error)
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	cfg, _, err := parseFlags(args)
	return cfg, err
}

// parseFlags also returns a function that reapplies the flags present in
// args to a merged config, so an explicit zero (-request-timeout 0) still
// wins over lower layers.
func parseFlags(args []string) (*StructuredConfig, func(*StructuredConfig), error) {
	var address string
	var requestTimeout time.Duration
	var ui string
	var logFile string
	var logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("shop-client", flag.ContinueOnError)
	fs.StringVar(&address, "a", "", "Backend base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&ui, "ui", "", "Front-end: console or tui")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			UI:       ui,
			LogFile:  logFile,
			LogLevel: logLevel,
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	apply := func(dst *StructuredConfig) {
		if set["a"] {
			dst.Adapter.HTTPAddress = cfg.Adapter.HTTPAddress
		}
		if set["request-timeout"] {
			dst.Adapter.RequestTimeout = cfg.Adapter.RequestTimeout
		}
		if set["ui"] {
			dst.App.UI = cfg.App.UI
		}
		if set["log-file"] {
			dst.App.LogFile = cfg.App.LogFile
		}
		if set["log-level"] {
			dst.App.LogLevel = cfg.App.LogLevel
		}
	}

	return cfg, apply, nil
}
