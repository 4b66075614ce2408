// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ExpirationDateLayout is the yyyy-MM-dd layout of [Product.ExpirationDate].
const ExpirationDateLayout = "2006-01-02"

// Product is a backend product record.
//
// ID is assigned by the server and is always sent, even when empty.
// Creation uses [NewProduct].
type Product struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	ExpirationDate string  `json:"expirationDate"`
}

// NewProduct is the creation payload. It never carries an id.
type NewProduct struct {
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	ExpirationDate string  `json:"expirationDate"`
}
