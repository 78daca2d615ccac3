// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-calcufit/internal/adapter"
	"github.com/MKhiriev/go-calcufit/internal/config"
	"github.com/MKhiriev/go-calcufit/internal/crypto"
	"github.com/MKhiriev/go-calcufit/internal/logger"
	"github.com/MKhiriev/go-calcufit/internal/store"
	"github.com/MKhiriev/go-calcufit/internal/utils"
)

// ClientServices groups every service the UI talks to.
type ClientServices struct {
	Session  SessionService
	Tracker  TrackerService
	Reports  ReportService
	Estimate EstimateService
}

// NewClientServices wires the services over the given storage and
// estimator. Returns an error if the configured timezone cannot be loaded.
func NewClientServices(cfg *config.StructuredConfig, storages *store.ClientStorages, estimator adapter.Estimator, hasher crypto.PasswordHasher, logger *logger.Logger) (*ClientServices, error) {
	loc, err := cfg.App.Location()
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.App.Timezone, err)
	}

	ids := utils.NewUUIDGenerator()
	session := NewSession(storages.RecordStore, hasher, ids, logger)

	return &ClientServices{
		Session:  session,
		Tracker:  NewTrackerService(session, ids, logger),
		Reports:  NewReportService(session, loc, cfg.App.Locale, cfg.App.DailyScope),
		Estimate: NewEstimateService(estimator, cfg.Estimator.Timeout, logger),
	}, nil
}
