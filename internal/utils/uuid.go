// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// NewRequestID returns a time-ordered UUIDv7 string used to correlate an
// outbound request with its log entries. It falls back to a random UUIDv4
// if the v7 generator fails.
func NewRequestID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
