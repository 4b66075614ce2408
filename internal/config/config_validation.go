// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" {
		return fmt.Errorf("%w: empty backend address", ErrInvalidAdapterConfigs)
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	switch cfg.App.UI {
	case UIConsole, UITUI:
	default:
		return fmt.Errorf("%w: unknown ui mode %q", ErrInvalidAppConfigs, cfg.App.UI)
	}

	return nil
}
