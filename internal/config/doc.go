// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the shop client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file
//  3. Environment variables (optionally seeded from a .env file)
//  4. Command-line flags
//
// A flag given on the command line always wins, even with a zero value.
//
// The main entry point is [GetClientConfig].
package config
