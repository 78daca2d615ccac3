// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-calcufit/internal/adapter"
	"github.com/MKhiriev/go-calcufit/internal/logger"
	"github.com/MKhiriev/go-calcufit/models"
)

type estimateService struct {
	estimator adapter.Estimator
	timeout   time.Duration
	inFlight  atomic.Bool
	logger    *logger.Logger
}

// NewEstimateService constructs an [EstimateService]. Each call is bounded
// by timeout when it is positive.
func NewEstimateService(estimator adapter.Estimator, timeout time.Duration, logger *logger.Logger) EstimateService {
	return &estimateService{estimator: estimator, timeout: timeout, logger: logger}
}

func (e *estimateService) Enabled() bool {
	return e.estimator.Enabled()
}

func (e *estimateService) InProgress() bool {
	return e.inFlight.Load()
}

func (e *estimateService) Estimate(ctx context.Context, req models.EstimateRequest) (FoodForm, error) {
	req.Description = strings.TrimSpace(req.Description)
	if req.Empty() {
		return FoodForm{}, ErrNothingToEstimate
	}

	if !e.inFlight.CompareAndSwap(false, true) {
		return FoodForm{}, ErrEstimateInProgress
	}
	defer e.inFlight.Store(false)

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	started := time.Now()
	estimate, err := e.estimator.Estimate(ctx, req)
	if err != nil {
		e.logger.Warn().Err(err).Str("func", "*estimateService.Estimate").Dur("elapsed", time.Since(started)).Msg("estimation failed")
		return FoodForm{}, fmt.Errorf("%w: %w", ErrEstimateFailed, err)
	}

	return estimateToForm(estimate, req.Description), nil
}

// estimateToForm rounds every number to an integer and falls back to the
// typed description when the estimate has no name.
func estimateToForm(est models.NutritionEstimate, description string) FoodForm {
	name := strings.TrimSpace(est.Name)
	if name == "" {
		name = description
	}

	return FoodForm{
		Name:    name,
		Kcal:    formatNumber(roundNonNegative(est.Kcal)),
		Carbs:   formatNumber(roundNonNegative(est.Carbs)),
		Protein: formatNumber(roundNonNegative(est.Protein)),
		Fat:     formatNumber(roundNonNegative(est.Fat)),
	}
}

func roundNonNegative(v float64) float64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	return math.Round(v)
}
