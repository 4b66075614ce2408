// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/shop-console/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientAuthService authenticates the user against the backend.
type ClientAuthService interface {
	// Authenticate sends the credentials and returns an authenticated
	// session on success. On any failure it returns the zero (unauthenticated)
	// session together with [ErrInvalidCredentials] or a network error.
	Authenticate(ctx context.Context, credentials models.Credentials) (models.Session, error)
}

// ClientUserService manages backend users.
type ClientUserService interface {
	// Create registers a new user.
	Create(ctx context.Context, user models.User) error

	// List returns every user as a raw JSON element, in backend order.
	List(ctx context.Context) ([]json.RawMessage, error)
}

// ClientProductService manages products on behalf of the session user.
// Every method sends session.UserEmail, authenticated or not.
type ClientProductService interface {
	// List returns every product as a raw JSON element.
	List(ctx context.Context, session models.Session) ([]json.RawMessage, error)

	// Get returns the raw record of the product with the given id.
	Get(ctx context.Context, session models.Session, id string) (json.RawMessage, error)

	// Create adds a product; the id is assigned by the backend.
	Create(ctx context.Context, session models.Session, product models.NewProduct) error

	// Update replaces the product identified by product.ID.
	Update(ctx context.Context, session models.Session, product models.Product) error

	// Delete removes the product with the given id.
	Delete(ctx context.Context, session models.Session, id string) error

	// MostExpensive returns the backend's top three products by price.
	MostExpensive(ctx context.Context, session models.Session) ([]json.RawMessage, error)
}
