// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the Bubble Tea terminal interface of calcufit.
//
// A single [RootModel] owns one page per [models.View] and routes messages
// to the active page. Pages never switch views on their own: they emit
// [NavigateTo], and the root asks the session to navigate before showing
// the next page. All service calls run as tea.Cmd so the UI loop never
// blocks on storage or on the estimator.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-calcufit/internal/logger"
	"github.com/MKhiriev/go-calcufit/internal/service"
	"github.com/MKhiriev/go-calcufit/models"
)

// TUI runs the terminal program.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New constructs a [TUI] over services.
func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run blocks until the user quits. The session must already be booted.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.services, t.buildInfo)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if result, ok := finalModel.(RootModel); ok {
		t.logger.Info().
			Str("func", "*TUI.Run").
			Str("state", result.services.Session.State().String()).
			Msg("ui closed")
	}
	return nil
}
