// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-calcufit/internal/service"
	"github.com/MKhiriev/go-calcufit/models"
)

// NavigateTo asks the root model to switch to View.
type NavigateTo struct {
	View models.View
}

// authDoneMsg is the result of a login or signup.
type authDoneMsg struct {
	err error
}

type logoutDoneMsg struct {
	err error
}

// savedMsg is the result of any account mutation issued by a page. clear
// lists the form fields to reset on success.
type savedMsg struct {
	notice string
	clear  []int
	err    error
}

type estimateDoneMsg struct {
	form service.FoodForm
	err  error
}

type copiedMsg struct {
	err error
}
