// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/go-calcufit/internal/config"
	"github.com/MKhiriev/go-calcufit/internal/stats"
	"github.com/MKhiriev/go-calcufit/models"
)

type reportService struct {
	session SessionService
	loc     *time.Location
	locale  string
	scope   string
	now     func() time.Time
}

// NewReportService constructs a [ReportService]. scope is one of
// config.DailyScopeToday or config.DailyScopeAll.
func NewReportService(session SessionService, loc *time.Location, locale, scope string) ReportService {
	return &reportService{
		session: session,
		loc:     loc,
		locale:  locale,
		scope:   scope,
		now:     time.Now,
	}
}

func (r *reportService) Today() (models.DailySummary, error) {
	account, ok := r.session.Account()
	if !ok {
		return models.DailySummary{}, ErrNotLoggedIn
	}

	if r.scope == config.DailyScopeAll {
		return stats.Overall(account), nil
	}
	return stats.Daily(account, r.now(), r.loc), nil
}

func (r *reportService) Week() (models.WeeklyReport, error) {
	account, ok := r.session.Account()
	if !ok {
		return models.WeeklyReport{}, ErrNotLoggedIn
	}

	return stats.Weekly(account, r.now(), r.loc, r.locale), nil
}
