// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects configuration layers and merges them in priority
// order: defaults, JSON file, then env/flags in the order they were added.
// Merging skips zero values; flags given explicitly are reapplied last.
type configBuilder struct {
	defaults *StructuredConfig
	file     *StructuredConfig
	configs  []*StructuredConfig
	explicit []func(*StructuredConfig)
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 2),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	layers := make([]*StructuredConfig, 0, len(b.configs)+2)
	if b.defaults != nil {
		layers = append(layers, b.defaults)
	}
	if b.file != nil {
		layers = append(layers, b.file)
	}
	layers = append(layers, b.configs...)

	config := new(StructuredConfig)
	for _, cfg := range layers {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	for _, apply := range b.explicit {
		apply(config)
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.defaults = defaultConfig()
	return b
}

func (b *configBuilder) withEnv(dotEnvPath string) *configBuilder {
	if err := loadDotEnv(dotEnvPath); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, apply, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	b.explicit = append(b.explicit, apply)
	return b
}

// withJSON parses the JSON file named by the last env/flag layer that set
// one. The file layer sits below env and flags.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.file = jsonCfg

	return b
}
