// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides the small helpers shared by the client packages:
// the resty-backed HTTP client and request id generation.
package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// RequestIDHeader is set on every outbound request that does not carry one.
const RequestIDHeader = "X-Request-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080/api", 0)
//	resp, err := client.R().Get("/users/readAllUsers")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL.
//
// A zero timeout leaves requests without a deadline. Retries stay disabled
// (resty's default retry count is zero), so every call is a single attempt.
// Each call returns an independent client with its own connection pool.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		OnBeforeRequest(setRequestID)

	return &HTTPClient{Client: client}
}

func setRequestID(_ *resty.Client, r *resty.Request) error {
	if r.Header.Get(RequestIDHeader) == "" {
		r.SetHeader(RequestIDHeader, NewRequestID())
	}
	return nil
}
