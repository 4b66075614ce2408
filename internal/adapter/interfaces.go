// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the shop client and
// the backend HTTP API.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. Every method issues exactly one request: there
// is no retry or caching.
//
// Transport failures are reported wrapped in [ErrNetwork]. Any status other
// than 200 is reported as an [*HTTPError] whose message is the response body
// verbatim; it also unwraps to a status sentinel so callers can use
// [errors.Is] (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/shop-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// UserEmailHeader identifies the session user on product requests.
const UserEmailHeader = "user-email"

// ServerAdapter defines communication with the shop backend. Product methods
// take the session email and always send it in [UserEmailHeader], even when
// it is empty: the backend alone decides whether to reject the request.
type ServerAdapter interface {
	// Authenticate posts the credentials to /users/authenticate and returns
	// the raw response body of a 200 response.
	Authenticate(ctx context.Context, credentials models.Credentials) (string, error)

	// CreateUser posts a new user to /users/createUser.
	CreateUser(ctx context.Context, user models.User) error

	// ListUsers fetches /users/readAllUsers and returns the raw JSON body.
	ListUsers(ctx context.Context) (json.RawMessage, error)

	// ListProducts fetches /products/readAllProducts and returns the raw
	// JSON body.
	ListProducts(ctx context.Context, userEmail string) (json.RawMessage, error)

	// GetProduct fetches /products/readProductById/{id} and returns the raw
	// body.
	GetProduct(ctx context.Context, userEmail, id string) (json.RawMessage, error)

	// CreateProduct posts a product without id to /products/create.
	CreateProduct(ctx context.Context, userEmail string, product models.NewProduct) error

	// UpdateProduct puts the full product, id included, to
	// /products/updateProduct.
	UpdateProduct(ctx context.Context, userEmail string, product models.Product) error

	// DeleteProduct deletes /products/deleteProduct/{id}.
	DeleteProduct(ctx context.Context, userEmail, id string) error

	// MostExpensiveProducts fetches /products/most-expensive-products and
	// returns the raw JSON body.
	MostExpensiveProducts(ctx context.Context, userEmail string) (json.RawMessage, error)
}
