// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the application logic of calcufit: the session
// controller that owns the active account, and the tracker, report and
// estimate services built on top of it.
//
// All account mutations go through [SessionService.UpdateAccount], which
// writes to the record store before the in-memory account changes.
package service

import (
	"context"

	"github.com/MKhiriev/go-calcufit/models"
)

// SessionService owns the authenticated account and the active view.
type SessionService interface {
	// Boot restores the session from the persisted active-account pointer.
	// Only the first call reads the store; later calls return the current
	// state.
	Boot(ctx context.Context) SessionState

	// State returns the current lifecycle state.
	State() SessionState

	// Account returns a copy of the active account. ok is false unless the
	// session is logged in.
	Account() (account models.Account, ok bool)

	// View returns the active view.
	View() models.View

	// Login authenticates by email (ignoring case) and password.
	Login(ctx context.Context, email, password string) (models.Account, error)

	// Signup registers a new account with default goals and logs it in.
	Signup(ctx context.Context, req SignupRequest) (models.Account, error)

	// UpdateAccount persists account as the new state of the active account.
	// On failure the session keeps the previous account.
	UpdateAccount(ctx context.Context, account models.Account) error

	// Logout clears the persisted pointer and returns to the login view.
	Logout(ctx context.Context) error

	// Navigate switches the active view.
	Navigate(view models.View) error
}

// TrackerService records intake and profile changes for the active account.
type TrackerService interface {
	// AddFood validates form and appends a food record dated now.
	AddFood(ctx context.Context, form FoodForm) (models.FoodRecord, error)

	// RemoveFood deletes the food record with id. Unknown ids are a no-op.
	RemoveFood(ctx context.Context, id string) error

	// AddWater parses ml and appends a water record dated now.
	AddWater(ctx context.Context, ml string) (models.WaterRecord, error)

	// SaveProfile updates the display name and goals.
	SaveProfile(ctx context.Context, form ProfileForm) error

	// FoodLog returns the food records newest first.
	FoodLog() ([]models.FoodRecord, error)
}

// ReportService computes the statistics shown on the home and reports
// screens for the active account.
type ReportService interface {
	// Today returns the home summary according to the configured scope.
	Today() (models.DailySummary, error)

	// Week returns the 7-day series ending today.
	Week() (models.WeeklyReport, error)
}

// EstimateService pre-fills the food form from the AI estimator.
type EstimateService interface {
	// Enabled reports whether estimation is configured.
	Enabled() bool

	// InProgress reports whether a call is pending.
	InProgress() bool

	// Estimate runs one bounded estimation call and returns the result as
	// form values. A concurrent call fails with ErrEstimateInProgress.
	Estimate(ctx context.Context, req models.EstimateRequest) (FoodForm, error)
}
