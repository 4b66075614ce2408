// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the payloads the shop client exchanges with the
// backend together with the in-memory session value.
package models

// Session records whether the user passed authentication and which email
// identifies them to the backend. The zero value is an unauthenticated
// session with an empty email.
//
// A Session is never persisted and is replaced only by a successful
// authentication call.
type Session struct {
	Authenticated bool
	UserEmail     string
}

// NewSession returns an authenticated session bound to email.
func NewSession(email string) Session {
	return Session{Authenticated: true, UserEmail: email}
}
