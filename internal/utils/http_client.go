// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every bridge request.
const UserAgent = "go-media-mirror"

// HTTPClient is a wrapper around the resty.Client HTTP client. It embeds
// *resty.Client so all of its methods are available directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a JSON client for the bridge at baseURL. Every request
// is bounded by timeout; a non-positive timeout leaves requests unbounded.
//
// Each call returns an independent client with its own connection pool.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8200", 30*time.Second)
//	resp, err := client.R().SetResult(&out).Get("/api/servers")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", UserAgent)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
