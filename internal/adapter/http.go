// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/shop-console/internal/config"
	"github.com/MKhiriev/shop-console/internal/logger"
	"github.com/MKhiriev/shop-console/internal/utils"
	"github.com/MKhiriev/shop-console/models"
	"github.com/go-resty/resty/v2"
)

// Backend endpoint paths, relative to the configured base URL.
const (
	pathAuthenticate          = "/users/authenticate"
	pathCreateUser            = "/users/createUser"
	pathReadAllUsers          = "/users/readAllUsers"
	pathReadAllProducts       = "/products/readAllProducts"
	pathReadProductByID       = "/products/readProductById/{id}"
	pathCreateProduct         = "/products/create"
	pathUpdateProduct         = "/products/updateProduct"
	pathDeleteProduct         = "/products/deleteProduct/{id}"
	pathMostExpensiveProducts = "/products/most-expensive-products"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// call describes a single backend request.
type call struct {
	method string
	path   string
	// id fills the {id} path parameter, escaped as one segment.
	id string
	// withEmail sends userEmail in the user-email header, even when empty.
	withEmail bool
	userEmail string
	body      any
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures one shared HTTP client with the
// request timeout (zero means none).
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) Authenticate(ctx context.Context, credentials models.Credentials) (string, error) {
	resp, err := h.send(ctx, call{method: http.MethodPost, path: pathAuthenticate, body: credentials})
	if err != nil {
		return "", err
	}
	return resp.String(), nil
}

func (h *httpServerAdapter) CreateUser(ctx context.Context, user models.User) error {
	_, err := h.send(ctx, call{method: http.MethodPost, path: pathCreateUser, body: user})
	return err
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) (json.RawMessage, error) {
	resp, err := h.send(ctx, call{method: http.MethodGet, path: pathReadAllUsers})
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

func (h *httpServerAdapter) ListProducts(ctx context.Context, userEmail string) (json.RawMessage, error) {
	resp, err := h.send(ctx, call{
		method:    http.MethodGet,
		path:      pathReadAllProducts,
		withEmail: true,
		userEmail: userEmail,
	})
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

func (h *httpServerAdapter) GetProduct(ctx context.Context, userEmail, id string) (json.RawMessage, error) {
	resp, err := h.send(ctx, call{
		method:    http.MethodGet,
		path:      pathReadProductByID,
		id:        id,
		withEmail: true,
		userEmail: userEmail,
	})
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

func (h *httpServerAdapter) CreateProduct(ctx context.Context, userEmail string, product models.NewProduct) error {
	_, err := h.send(ctx, call{
		method:    http.MethodPost,
		path:      pathCreateProduct,
		withEmail: true,
		userEmail: userEmail,
		body:      product,
	})
	return err
}

func (h *httpServerAdapter) UpdateProduct(ctx context.Context, userEmail string, product models.Product) error {
	_, err := h.send(ctx, call{
		method:    http.MethodPut,
		path:      pathUpdateProduct,
		withEmail: true,
		userEmail: userEmail,
		body:      product,
	})
	return err
}

func (h *httpServerAdapter) DeleteProduct(ctx context.Context, userEmail, id string) error {
	_, err := h.send(ctx, call{
		method:    http.MethodDelete,
		path:      pathDeleteProduct,
		id:        id,
		withEmail: true,
		userEmail: userEmail,
	})
	return err
}

func (h *httpServerAdapter) MostExpensiveProducts(ctx context.Context, userEmail string) (json.RawMessage, error) {
	resp, err := h.send(ctx, call{
		method:    http.MethodGet,
		path:      pathMostExpensiveProducts,
		withEmail: true,
		userEmail: userEmail,
	})
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// send performs one attempt of c and maps the outcome: a transport failure
// becomes [ErrNetwork], a status other than 200 becomes [*HTTPError].
func (h *httpServerAdapter) send(ctx context.Context, c call) (*resty.Response, error) {
	req := h.client.R().SetContext(ctx)
	if strings.Contains(c.path, "{id}") {
		req.SetPathParam("id", c.id)
	}
	if c.withEmail {
		req.SetHeader(UserEmailHeader, c.userEmail)
	}
	if c.body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(c.body)
	}

	resp, err := req.Execute(c.method, c.path)
	requestID := req.Header.Get(utils.RequestIDHeader)
	if err != nil {
		h.logger.Warn().Err(err).
			Str("method", c.method).
			Str("path", c.path).
			Str("request_id", requestID).
			Msg("backend request failed")
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	h.logger.Debug().
		Str("method", c.method).
		Str("path", c.path).
		Int("status", resp.StatusCode()).
		Dur("latency", resp.Time()).
		Str("request_id", requestID).
		Msg("backend request done")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return resp, nil
}
