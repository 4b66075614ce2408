// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing text shared by the shop client
// front-ends and operation handlers.
//
// Msg* constants are complete lines. Prefixes (Msg*Failed, Msg*Error) are
// followed by the raw backend body or the error text. Keeping them in one
// place keeps the console and the terminal UI worded identically.
package app

const (
	MsgWelcome      = "=== Welcome to the Backend CLI ==="
	MsgPleaseLogIn  = "Please log in to access the system."
	MsgEnterChoice  = "Enter your choice: "
	MsgGoodbye      = "Goodbye!"
	MsgReturnToMain = "Returning to Main Menu..."

	// MsgInvalidInput is formatted with the field problem, e.g.
	// "Age must be a whole number".
	MsgInvalidInput = "Invalid input! %s."
)

// Authentication.
const (
	MsgLoginSuccessful     = "Login successful! Welcome, "
	MsgInvalidLogin        = "Invalid email or password. Please try again."
	MsgAuthenticationError = "Error during authentication: "
)

// Users.
const (
	MsgUserCreated      = "User created successfully!"
	MsgUserCreateFailed = "Failed to create user. Error: "
	MsgUserCreateError  = "Error during user creation: "
	MsgUsersHeader      = "=== Users ==="
	MsgUsersFetchFailed = "Failed to fetch users. Error: "
	MsgUsersFetchError  = "Error during fetching users: "
)

// Products.
const (
	MsgProductsHeader      = "=== Products ==="
	MsgProductsFetchFailed = "Failed to fetch products. Error: "
	MsgProductsFetchError  = "Error during fetching products: "

	MsgProduct            = "Product: "
	MsgProductFetchFailed = "Failed to fetch product. Error: "
	MsgProductFetchError  = "Error during fetching product: "

	MsgProductAdded    = "Product added successfully!"
	MsgProductAddError = "Error during adding product: "

	MsgProductUpdated      = "Product updated successfully!"
	MsgProductUpdateFailed = "Failed to update product. Error: "
	MsgProductUpdateError  = "Error during updating product: "

	MsgProductDeleted      = "Product deleted successfully!"
	MsgProductDeleteFailed = "Failed to delete product. Error: "
	MsgProductDeleteError  = "Error during deleting product: "

	MsgTopExpensiveHeader      = "=== Top 3 Expensive Products ==="
	MsgTopExpensiveFetchFailed = "Failed to fetch top expensive products. Error: "
	MsgTopExpensiveFetchError  = "Error during fetching top expensive products: "
)
