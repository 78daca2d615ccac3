// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors returned by [Estimator] implementations.
var (
	// ErrEstimatorDisabled is returned when no API key is configured.
	ErrEstimatorDisabled = errors.New("estimator disabled")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("estimator unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrRateLimited         = errors.New("rate limited")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnavailable         = errors.New("service unavailable")

	// ErrEmptyResponse is returned when the service answers without any
	// candidate text.
	ErrEmptyResponse = errors.New("empty estimation response")

	// ErrMalformedResponse is returned when the candidate text is not the
	// expected JSON object.
	ErrMalformedResponse = errors.New("malformed estimation response")
)
