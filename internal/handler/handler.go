// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler executes the shop client operations on behalf of a
// front-end and renders their outcome as the lines the user reads.
//
// A handler call never fails: network errors, rejected requests and
// malformed input all become messages, and the session is left as it was.
package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/shop-console/internal/adapter"
	"github.com/MKhiriev/shop-console/internal/app"
	"github.com/MKhiriev/shop-console/internal/logger"
	"github.com/MKhiriev/shop-console/internal/menu"
	"github.com/MKhiriev/shop-console/internal/service"
	"github.com/MKhiriev/shop-console/models"
)

// Handler runs menu actions against the client services.
type Handler struct {
	auth     service.ClientAuthService
	users    service.ClientUserService
	products service.ClientProductService
}

func NewHandler(services *service.ClientServices) *Handler {
	return &Handler{
		auth:     services.AuthService,
		users:    services.UserService,
		products: services.ProductService,
	}
}

// Authenticate logs in with the credentials in values. It returns the new
// session (unauthenticated on any failure) and the line to show.
func (h *Handler) Authenticate(ctx context.Context, values menu.Values) (models.Session, string) {
	log := logger.FromContext(ctx)
	credentials := values.Credentials()

	session, err := h.auth.Authenticate(ctx, credentials)
	switch {
	case err == nil:
		return session, app.MsgLoginSuccessful + credentials.Email
	case errors.Is(err, service.ErrInvalidCredentials):
		log.Info().Err(err).Str("email", credentials.Email).Msg("login rejected")
		return models.Session{}, app.MsgInvalidLogin
	default:
		log.Err(err).Str("email", credentials.Email).Msg("login failed")
		return models.Session{}, app.MsgAuthenticationError + err.Error()
	}
}

// Execute runs action with the session and the field values collected for
// it and returns the lines to show. Navigation-only actions return their
// farewell line or nothing.
func (h *Handler) Execute(ctx context.Context, action menu.Action, session models.Session, values menu.Values) []string {
	log := logger.FromContext(ctx).With().Str("action", action.String()).Logger()

	lines, err := h.execute(ctx, action, session, values)
	if err != nil {
		var fieldErr *menu.FieldError
		if errors.As(err, &fieldErr) {
			log.Debug().Err(err).Msg("action aborted")
		} else {
			log.Warn().Err(err).Msg("action failed")
		}
	}
	return lines
}

func (h *Handler) execute(ctx context.Context, action menu.Action, session models.Session, values menu.Values) ([]string, error) {
	switch action {
	case menu.ActionExit:
		return []string{app.MsgGoodbye}, nil
	case menu.ActionBack:
		return []string{app.MsgReturnToMain}, nil

	case menu.ActionCreateUser:
		user, err := values.User()
		if err != nil {
			return invalidInput(err), err
		}
		if err = h.users.Create(ctx, user); err != nil {
			return failure(err, app.MsgUserCreateFailed, app.MsgUserCreateError), err
		}
		return []string{app.MsgUserCreated}, nil

	case menu.ActionListUsers:
		items, err := h.users.List(ctx)
		if err != nil {
			return failure(err, app.MsgUsersFetchFailed, app.MsgUsersFetchError), err
		}
		return listing(app.MsgUsersHeader, items), nil

	case menu.ActionListProducts:
		items, err := h.products.List(ctx, session)
		if err != nil {
			return failure(err, app.MsgProductsFetchFailed, app.MsgProductsFetchError), err
		}
		return listing(app.MsgProductsHeader, items), nil

	case menu.ActionGetProduct:
		body, err := h.products.Get(ctx, session, values.ID())
		if err != nil {
			return failure(err, app.MsgProductFetchFailed, app.MsgProductFetchError), err
		}
		return []string{app.MsgProduct + string(body)}, nil

	case menu.ActionAddProduct:
		product, err := values.NewProduct()
		if err != nil {
			return invalidInput(err), err
		}
		// a rejected add shows the bare body
		if err = h.products.Create(ctx, session, product); err != nil {
			return failure(err, "", app.MsgProductAddError), err
		}
		return []string{app.MsgProductAdded}, nil

	case menu.ActionUpdateProduct:
		product, err := values.Product()
		if err != nil {
			return invalidInput(err), err
		}
		if err = h.products.Update(ctx, session, product); err != nil {
			return failure(err, app.MsgProductUpdateFailed, app.MsgProductUpdateError), err
		}
		return []string{app.MsgProductUpdated}, nil

	case menu.ActionDeleteProduct:
		if err := h.products.Delete(ctx, session, values.ID()); err != nil {
			return failure(err, app.MsgProductDeleteFailed, app.MsgProductDeleteError), err
		}
		return []string{app.MsgProductDeleted}, nil

	case menu.ActionTopExpensive:
		items, err := h.products.MostExpensive(ctx, session)
		if err != nil {
			return failure(err, app.MsgTopExpensiveFetchFailed, app.MsgTopExpensiveFetchError), err
		}
		return listing(app.MsgTopExpensiveHeader, items), nil
	}

	return nil, nil
}

// failure renders err with failedPrefix when the backend answered with a
// non-200 status and with errorPrefix otherwise.
func failure(err error, failedPrefix, errorPrefix string) []string {
	var httpErr *adapter.HTTPError
	if errors.As(err, &httpErr) {
		return []string{failedPrefix + httpErr.Body}
	}
	return []string{errorPrefix + err.Error()}
}

func invalidInput(err error) []string {
	return []string{InvalidInputMessage(err)}
}

// InvalidInputMessage renders a field that failed to parse.
func InvalidInputMessage(err error) string {
	var fieldErr *menu.FieldError
	if errors.As(err, &fieldErr) {
		return fmt.Sprintf(app.MsgInvalidInput, fieldErr.Reason())
	}
	return err.Error()
}

func listing(header string, items []json.RawMessage) []string {
	lines := make([]string, 0, len(items)+1)
	lines = append(lines, header)
	for _, item := range items {
		lines = append(lines, compact(item))
	}
	return lines
}

// compact prints one item on one line; invalid JSON is printed as is.
func compact(item json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, item); err != nil {
		return string(item)
	}
	return buf.String()
}
