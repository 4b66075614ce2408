// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ClientConfig.validate].
var (
	// ErrInvalidAdapterConfigs indicates invalid transport settings
	// (empty backend address or negative timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates invalid front-end or logging settings
	// (unknown UI mode or log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
