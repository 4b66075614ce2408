// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// ErrNetwork wraps connection failures, timeouts and cancelled requests.
var ErrNetwork = errors.New("network error")

// Status sentinels an [*HTTPError] unwraps to.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// HTTPError is a response with a status other than 200.
type HTTPError struct {
	StatusCode int
	Body       string
}

// Error returns the response body verbatim; it is what the user sees.
func (e *HTTPError) Error() string {
	return e.Body
}

// Unwrap returns the sentinel matching StatusCode.
func (e *HTTPError) Unwrap() error {
	return statusSentinel(e.StatusCode)
}
