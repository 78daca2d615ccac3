// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-calcufit/internal/logger"
	"github.com/MKhiriev/go-calcufit/internal/utils"
	"github.com/MKhiriev/go-calcufit/models"
)

type trackerService struct {
	session SessionService
	ids     utils.IDGenerator
	now     func() time.Time
	logger  *logger.Logger
}

// NewTrackerService constructs a [TrackerService] that mutates the active
// account of session.
func NewTrackerService(session SessionService, ids utils.IDGenerator, logger *logger.Logger) TrackerService {
	return &trackerService{session: session, ids: ids, now: time.Now, logger: logger}
}

func (t *trackerService) AddFood(ctx context.Context, form FoodForm) (models.FoodRecord, error) {
	account, ok := t.session.Account()
	if !ok {
		return models.FoodRecord{}, ErrNotLoggedIn
	}

	name := strings.TrimSpace(form.Name)
	if name == "" || strings.TrimSpace(form.Kcal) == "" {
		return models.FoodRecord{}, ErrEmptyField
	}
	kcal, ok := parseNumber(form.Kcal)
	if !ok || kcal < 0 {
		return models.FoodRecord{}, ErrInvalidFood
	}

	rec := models.FoodRecord{
		ID:      t.ids.Generate(),
		Name:    name,
		Kcal:    kcal,
		Carbs:   numberOrZero(form.Carbs),
		Protein: numberOrZero(form.Protein),
		Fat:     numberOrZero(form.Fat),
		Date:    t.now().UTC(),
	}

	if err := t.session.UpdateAccount(ctx, account.WithFood(rec)); err != nil {
		return models.FoodRecord{}, err
	}

	t.logger.Debug().Str("func", "*trackerService.AddFood").Str("record_id", rec.ID).Float64("kcal", rec.Kcal).Msg("food added")
	return rec, nil
}

func (t *trackerService) RemoveFood(ctx context.Context, id string) error {
	account, ok := t.session.Account()
	if !ok {
		return ErrNotLoggedIn
	}

	return t.session.UpdateAccount(ctx, account.WithoutFood(id))
}

func (t *trackerService) AddWater(ctx context.Context, ml string) (models.WaterRecord, error) {
	account, ok := t.session.Account()
	if !ok {
		return models.WaterRecord{}, ErrNotLoggedIn
	}

	if strings.TrimSpace(ml) == "" {
		return models.WaterRecord{}, ErrEmptyField
	}
	amount, ok := parseNumber(ml)
	if !ok || amount <= 0 {
		return models.WaterRecord{}, ErrInvalidWater
	}

	rec := models.WaterRecord{
		ID:   t.ids.Generate(),
		ML:   amount,
		Date: t.now().UTC(),
	}

	if err := t.session.UpdateAccount(ctx, account.WithWater(rec)); err != nil {
		return models.WaterRecord{}, err
	}

	t.logger.Debug().Str("func", "*trackerService.AddWater").Str("record_id", rec.ID).Float64("ml", rec.ML).Msg("water added")
	return rec, nil
}

func (t *trackerService) SaveProfile(ctx context.Context, form ProfileForm) error {
	account, ok := t.session.Account()
	if !ok {
		return ErrNotLoggedIn
	}

	name := strings.TrimSpace(form.Name)
	if name == "" {
		return ErrEmptyField
	}

	goals := models.GoalSettings{
		CalorieGoal: goalOrDefault(form.CalorieGoal, models.DefaultCalorieGoal),
		WaterGoal:   goalOrDefault(form.WaterGoal, models.DefaultWaterGoal),
	}

	return t.session.UpdateAccount(ctx, account.WithProfile(name, goals))
}

func (t *trackerService) FoodLog() ([]models.FoodRecord, error) {
	account, ok := t.session.Account()
	if !ok {
		return nil, ErrNotLoggedIn
	}
	return account.FoodNewestFirst(), nil
}
