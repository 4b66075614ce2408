// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the body of the authenticate request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is a backend account as sent on creation. The client performs no
// validation beyond parsing Age as an integer.
type User struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
