// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the client services that sit between the
// operation handlers and the backend adapter. They classify authentication
// outcomes and decode list bodies; everything else is passed through.
package service

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/shop-console/internal/adapter"
	"github.com/MKhiriev/shop-console/internal/logger"
)

type ClientServices struct {
	AuthService    ClientAuthService
	UserService    ClientUserService
	ProductService ClientProductService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) (*ClientServices, error) {
	if serverAdapter == nil {
		return nil, fmt.Errorf("nil server adapter")
	}

	return &ClientServices{
		AuthService:    NewClientAuthService(serverAdapter, logger),
		UserService:    NewClientUserService(serverAdapter),
		ProductService: NewClientProductService(serverAdapter),
	}, nil
}

// decodeList splits a JSON array body into its elements. A null body is an
// empty list.
func decodeList(body json.RawMessage) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeResponse, err)
	}
	return items, nil
}
