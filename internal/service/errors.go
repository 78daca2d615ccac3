// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Validation errors. Each maps to a short user-facing message in
// internal/app.
var (
	ErrEmptyField         = errors.New("required field is empty")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidFood        = errors.New("invalid food record")
	ErrInvalidWater       = errors.New("invalid water amount")
	ErrInvalidView        = errors.New("invalid view")
)

// Session state errors.
var (
	ErrNotBooted       = errors.New("session not booted")
	ErrNotLoggedIn     = errors.New("not logged in")
	ErrAlreadyLoggedIn = errors.New("already logged in")
	ErrAccountMismatch = errors.New("account is not the active account")
)

// Estimation errors.
var (
	ErrNothingToEstimate  = errors.New("nothing to estimate")
	ErrEstimateInProgress = errors.New("estimate already in progress")
	ErrEstimateFailed     = errors.New("estimate failed")
)

// ErrStorage wraps every failed write to the record store.
var ErrStorage = errors.New("storage write failed")
