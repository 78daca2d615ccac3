// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-calcufit/internal/logger"
	"github.com/MKhiriev/go-calcufit/migrations"
)

// DB wraps the SQLite connection pool used by the slot store.
type DB struct {
	*sql.DB
	path   string
	logger *logger.Logger
}

// Migrate applies pending schema migrations.
func (db *DB) Migrate() error {
	started := time.Now()
	if err := migrations.Migrate(db.DB); err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Str("path", db.path).Msg("migration failed")
		return fmt.Errorf("migrate %s: %w", db.path, err)
	}

	db.logger.Debug().Str("func", "*DB.Migrate").Dur("elapsed", time.Since(started)).Msg("schema up to date")
	return nil
}
