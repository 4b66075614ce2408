// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"context"

	"github.com/MKhiriev/shop-console/internal/menu"
	"github.com/MKhiriev/shop-console/models"
)

// Operations is what a front-end needs to run the menus.
type Operations interface {
	Authenticate(ctx context.Context, values menu.Values) (models.Session, string)
	Execute(ctx context.Context, action menu.Action, session models.Session, values menu.Values) []string
}

var _ Operations = (*Handler)(nil)
