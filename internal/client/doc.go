// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It selects the configured front-end, attaches the logger to the context
// every operation runs with, and drives the front-end until the user exits.
package client
