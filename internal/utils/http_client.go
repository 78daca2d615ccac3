// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.WithBaseURL("https://example.com"))
//	resp, err := client.R().Get("/health")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures an [HTTPClient] at construction time.
type HTTPClientOption func(*resty.Client)

// WithBaseURL sets the URL that relative request paths are resolved against.
func WithBaseURL(url string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetBaseURL(url)
	}
}

// WithTimeout bounds every request made by the client. A non-positive
// timeout leaves the client unbounded.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if timeout > 0 {
			c.SetTimeout(timeout)
		}
	}
}

// NewHTTPClient creates and returns a new HTTPClient instance. Each call
// returns an independent client with its own connection pool. Retries are
// disabled: a failed request is reported to the caller as is.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	c := resty.New().
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	for _, opt := range opts {
		opt(c)
	}

	return &HTTPClient{Client: c}
}
