// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-calcufit/internal/logger"
)

// sqliteSlots is the SQLite-backed [SlotStore]. Each slot is a row of the
// "slots" table keyed by name.
type sqliteSlots struct {
	*DB
	logger *logger.Logger
}

// NewSQLiteSlotStore constructs a [SlotStore] over an already migrated DB.
func NewSQLiteSlotStore(db *DB, logger *logger.Logger) SlotStore {
	logger.Debug().Msg("creating sqlite slot store")
	return &sqliteSlots{DB: db, logger: logger}
}

func (s *sqliteSlots) Get(ctx context.Context, name string) ([]byte, bool, error) {
	var value string
	err := s.DB.QueryRowContext(ctx, getSlot, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "*sqliteSlots.Get").
			Str("slot", name).
			Msg("failed to read slot")
		return nil, false, fmt.Errorf("%w %q: %v", ErrSlotRead, name, err)
	}

	return []byte(value), true, nil
}

func (s *sqliteSlots) Put(ctx context.Context, name string, value []byte) error {
	if _, err := s.DB.ExecContext(ctx, putSlot, name, string(value)); err != nil {
		s.logger.Err(err).
			Str("func", "*sqliteSlots.Put").
			Str("slot", name).
			Msg("failed to upsert slot")
		return fmt.Errorf("%w %q: %v", ErrSlotWrite, name, err)
	}

	return nil
}

func (s *sqliteSlots) Delete(ctx context.Context, name string) error {
	if _, err := s.DB.ExecContext(ctx, deleteSlot, name); err != nil {
		s.logger.Err(err).
			Str("func", "*sqliteSlots.Delete").
			Str("slot", name).
			Msg("failed to delete slot")
		return fmt.Errorf("%w %q: %v", ErrSlotWrite, name, err)
	}

	return nil
}
