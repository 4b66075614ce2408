// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/shop-console/internal/adapter"
	"github.com/MKhiriev/shop-console/models"
)

type clientUserService struct {
	adapter adapter.ServerAdapter
}

func NewClientUserService(serverAdapter adapter.ServerAdapter) ClientUserService {
	return &clientUserService{adapter: serverAdapter}
}

func (u *clientUserService) Create(ctx context.Context, user models.User) error {
	return u.adapter.CreateUser(ctx, user)
}

func (u *clientUserService) List(ctx context.Context) ([]json.RawMessage, error) {
	body, err := u.adapter.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return decodeList(body)
}
