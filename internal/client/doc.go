// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It boots the session from local storage, hands control to the terminal
// UI and releases storage when the UI exits.
package client
