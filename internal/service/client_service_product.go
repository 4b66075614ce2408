// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/shop-console/internal/adapter"
	"github.com/MKhiriev/shop-console/models"
)

type clientProductService struct {
	adapter adapter.ServerAdapter
}

func NewClientProductService(serverAdapter adapter.ServerAdapter) ClientProductService {
	return &clientProductService{adapter: serverAdapter}
}

func (p *clientProductService) List(ctx context.Context, session models.Session) ([]json.RawMessage, error) {
	body, err := p.adapter.ListProducts(ctx, session.UserEmail)
	if err != nil {
		return nil, err
	}
	return decodeList(body)
}

func (p *clientProductService) Get(ctx context.Context, session models.Session, id string) (json.RawMessage, error) {
	return p.adapter.GetProduct(ctx, session.UserEmail, id)
}

func (p *clientProductService) Create(ctx context.Context, session models.Session, product models.NewProduct) error {
	return p.adapter.CreateProduct(ctx, session.UserEmail, product)
}

func (p *clientProductService) Update(ctx context.Context, session models.Session, product models.Product) error {
	return p.adapter.UpdateProduct(ctx, session.UserEmail, product)
}

func (p *clientProductService) Delete(ctx context.Context, session models.Session, id string) error {
	return p.adapter.DeleteProduct(ctx, session.UserEmail, id)
}

func (p *clientProductService) MostExpensive(ctx context.Context, session models.Session) ([]json.RawMessage, error) {
	body, err := p.adapter.MostExpensiveProducts(ctx, session.UserEmail)
	if err != nil {
		return nil, err
	}
	return decodeList(body)
}
