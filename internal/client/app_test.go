// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-calcufit/internal/config"
	"github.com/MKhiriev/go-calcufit/internal/crypto"
	"github.com/MKhiriev/go-calcufit/internal/logger"
	"github.com/MKhiriev/go-calcufit/internal/service"
	"github.com/MKhiriev/go-calcufit/internal/store"
	"github.com/MKhiriev/go-calcufit/internal/utils"
	"github.com/MKhiriev/go-calcufit/models"
)

type fakeUI struct {
	calls int
	state service.SessionState
	err   error
	s     service.SessionService
}

func (f *fakeUI) Run(context.Context) error {
	f.calls++
	f.state = f.s.State()
	return f.err
}

func newTestApp(t *testing.T, uiErr error) (*App, *fakeUI, *service.ClientServices) {
	t.Helper()

	ctx := context.Background()
	storages, err := store.NewClientStorages(ctx, config.Storage{DB: config.DB{DSN: store.MemoryDSN}}, logger.Nop())
	require.NoError(t, err)

	hasher := crypto.NewPasswordHasher(config.Auth{ArgonTime: 1, ArgonMemoryKiB: 64, ArgonThreads: 1})
	session := service.NewSession(storages.RecordStore, hasher, utils.NewUUIDGenerator(), logger.Nop())
	services := &service.ClientServices{Session: session}

	ui := &fakeUI{err: uiErr, s: session}
	app, err := NewApp(services, ui, storages, logger.Nop())
	require.NoError(t, err)
	return app, ui, services
}

func TestNewApp_MissingDependencies(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrMissingDependency)

	_, err = NewApp(&service.ClientServices{}, &fakeUI{}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrMissingDependency)

	app, _, services := newTestApp(t, nil)
	_, err = NewApp(services, nil, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrMissingDependency)
	assert.NotNil(t, app)
}

func TestApp_Run_BootsBeforeUI(t *testing.T) {
	app, ui, services := newTestApp(t, nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 1, ui.calls)
	assert.Equal(t, service.StateLoggedOut, ui.state)
	assert.Equal(t, models.ViewLogin, services.Session.View())
}

func TestApp_Run_UIError(t *testing.T) {
	uiErr := errors.New("no tty")
	app, _, _ := newTestApp(t, uiErr)

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, uiErr)
}
