// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Equal(t, UIConsole, cfg.App.UI)
	assert.Equal(t, zerolog.InfoLevel, cfg.App.LogLevel)
	assert.Empty(t, cfg.App.LogFile)
}

func TestGetClientConfig_FlagsApplied(t *testing.T) {
	cfg, err := GetClientConfig([]string{"-ui", "tui", "-log-level", "debug", "-request-timeout", "2s"})
	require.NoError(t, err)

	assert.Equal(t, UITUI, cfg.App.UI)
	assert.Equal(t, zerolog.DebugLevel, cfg.App.LogLevel)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
}

func TestGetClientConfig_ZeroTimeoutFlagOverridesJSON(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Adapter.RequestTimeout = Duration(30 * time.Second)
	path := writeTempJSONConfig(t, payload)

	cfg, err := GetClientConfig([]string{"-c", path, "-request-timeout", "0"})
	require.NoError(t, err)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
}

func TestGetClientConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "unknown ui", args: []string{"-ui", "web"}, wantErr: ErrInvalidAppConfigs},
		{name: "unknown log level", args: []string{"-log-level", "loud"}, wantErr: ErrInvalidAppConfigs},
		{name: "negative timeout", args: []string{"-request-timeout", "-1s"}, wantErr: ErrInvalidAdapterConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := GetClientConfig(tt.args)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, cfg)
		})
	}
}

func TestClientConfig_Validate_EmptyAddress(t *testing.T) {
	cfg := &ClientConfig{
		App:     ClientApp{UI: UIConsole},
		Adapter: ClientAdapter{HTTPAddress: "  "},
	}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
}
