// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "http://shop:8081/api",
		"-request-timeout", "30s",
		"-ui", "tui",
		"-log-file", "/tmp/shop.log",
		"-log-level", "debug",
		"-c", "/etc/shop.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://shop:8081/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "tui", cfg.App.UI)
	assert.Equal(t, "/tmp/shop.log", cfg.App.LogFile)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "/etc/shop.json", cfg.JSONFilePath)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-config", "/etc/alias.json"})
	require.NoError(t, err)
	assert.Equal(t, "/etc/alias.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-x"}},
		{name: "bad duration", args: []string{"-request-timeout", "later"}},
		{name: "missing value", args: []string{"-a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestParseFlags_Help(t *testing.T) {
	_, err := ParseFlags([]string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)
}
