// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to the
// remote nutrition estimation service.
//
// The primary abstraction is [Estimator], which decouples the service layer
// from the underlying API. The package ships an HTTP implementation for the
// Gemini generateContent endpoint ([NewGeminiEstimator]) and a disabled
// implementation used when no API key is configured.
//
// HTTP status codes are mapped to the sentinel errors in errors.go by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401, [ErrRateLimited] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-calcufit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/estimator_mock.go -package=mock

// Estimator turns a food description and/or photo into a nutrition
// estimate. Implementations make exactly one attempt per call and respect
// ctx cancellation.
type Estimator interface {
	// Estimate returns the raw estimate reported by the remote service.
	// Missing numeric fields are zero. No rounding is applied.
	Estimate(ctx context.Context, req models.EstimateRequest) (models.NutritionEstimate, error)

	// Enabled reports whether calls can succeed at all.
	Enabled() bool
}
