// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/shop-console/internal/adapter"
	"github.com/MKhiriev/shop-console/internal/logger"
	"github.com/MKhiriev/shop-console/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Authenticate(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	body, err := a.adapter.Authenticate(ctx, credentials)
	if err != nil {
		if errors.Is(err, adapter.ErrNetwork) {
			return models.Session{}, err
		}
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	// the backend answers a bare "true" or "false"
	if !strings.EqualFold(strings.TrimSpace(body), "true") {
		a.logger.Info().Str("email", credentials.Email).Msg("authentication rejected")
		return models.Session{}, ErrInvalidCredentials
	}

	a.logger.Info().Str("email", credentials.Email).Msg("authenticated")
	return models.NewSession(credentials.Email), nil
}
