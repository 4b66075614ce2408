// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidCredentials is returned when the backend rejects the
	// credentials or answers with anything but a true body.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrDecodeResponse is returned when a list endpoint answers 200 with a
	// body that is not a JSON array.
	ErrDecodeResponse = errors.New("decode response")
)
