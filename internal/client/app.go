// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-calcufit/internal/logger"
	"github.com/MKhiriev/go-calcufit/internal/service"
	"github.com/MKhiriev/go-calcufit/internal/store"
)

// ErrMissingDependency is returned by [NewApp] when a collaborator is nil.
var ErrMissingDependency = errors.New("missing app dependency")

// UI is the interactive loop the app hands control to after boot.
type UI interface {
	Run(ctx context.Context) error
}

// App owns the process lifecycle: boot the session, run the UI until the
// user quits, release storage.
type App struct {
	services *service.ClientServices
	ui       UI
	storages *store.ClientStorages
	logger   *logger.Logger
}

// NewApp constructs an [App]. storages may be nil when the caller owns
// their lifetime.
func NewApp(services *service.ClientServices, ui UI, storages *store.ClientStorages, logger *logger.Logger) (*App, error) {
	if services == nil || services.Session == nil {
		return nil, fmt.Errorf("%w: services", ErrMissingDependency)
	}
	if ui == nil {
		return nil, fmt.Errorf("%w: ui", ErrMissingDependency)
	}

	return &App{services: services, ui: ui, storages: storages, logger: logger}, nil
}

// Run boots the session and blocks in the UI loop.
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		if a.storages == nil {
			return
		}
		if closeErr := a.storages.Close(); closeErr != nil {
			a.logger.Err(closeErr).Str("func", "*App.Run").Msg("error closing storages")
			err = errors.Join(err, closeErr)
		}
	}()

	state := a.services.Session.Boot(ctx)
	a.logger.Info().
		Str("func", "*App.Run").
		Str("state", state.String()).
		Str("view", string(a.services.Session.View())).
		Msg("session booted")

	if err = a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
