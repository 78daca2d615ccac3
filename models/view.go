// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// View identifies the screen that is currently active in a session.
type View string

const (
	ViewLogin   View = "LOGIN"
	ViewSignup  View = "SIGNUP"
	ViewHome    View = "HOME"
	ViewTracker View = "TRACKER"
	ViewReports View = "REPORTS"
	ViewProfile View = "PROFILE"
)

// RequiresAccount reports whether the view can only be shown to a logged-in
// user.
func (v View) RequiresAccount() bool {
	switch v {
	case ViewHome, ViewTracker, ViewReports, ViewProfile:
		return true
	default:
		return false
	}
}

// Valid reports whether v is one of the known views.
func (v View) Valid() bool {
	switch v {
	case ViewLogin, ViewSignup, ViewHome, ViewTracker, ViewReports, ViewProfile:
		return true
	default:
		return false
	}
}
