// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-calcufit/internal/config"
	"github.com/MKhiriev/go-calcufit/internal/logger"
)

// MemoryDSN selects the process-local slot store.
const MemoryDSN = ":memory:"

// ClientStorages groups all client-side storage into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// RecordStore persists accounts and the active session pointer.
	RecordStore RecordStore

	db *DB
}

// NewClientStorages initialises the storage layer:
//  1. For [MemoryDSN] it uses an in-memory slot store and skips SQLite.
//  2. Otherwise it opens the SQLite file at cfg.DB.DSN, creating it when
//     missing, and runs pending migrations.
//  3. It wraps the slot store in a [RecordStore].
func NewClientStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	if cfg.DB.DSN == MemoryDSN {
		logger.Warn().Msg("using in-memory storage, data will be lost on exit")
		return &ClientStorages{
			RecordStore: NewRecordStore(NewMemorySlotStore(), logger),
		}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		RecordStore: NewRecordStore(NewSQLiteSlotStore(db, logger), logger),
		db:          db,
	}, nil
}

// Close releases the database connection, if any.
func (c *ClientStorages) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
