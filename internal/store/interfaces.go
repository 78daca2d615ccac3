// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-calcufit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SlotStore is a flat key-value store of named JSON slots.
// It has no transactions and no locking.
type SlotStore interface {
	// Get returns the raw value of slot name. ok is false when the slot is
	// absent.
	Get(ctx context.Context, name string) (value []byte, ok bool, err error)

	// Put overwrites slot name with value.
	Put(ctx context.Context, name string, value []byte) error

	// Delete removes slot name. Deleting an absent slot is not an error.
	Delete(ctx context.Context, name string) error
}

// RecordStore persists the collection of all accounts and the pointer to
// the currently authenticated account.
//
// Reads never fail: absent, unreadable or corrupted data is reported as
// "no data". Writes return an error when the underlying slot store fails.
type RecordStore interface {
	// ListAccounts returns all persisted accounts, or an empty slice.
	ListAccounts(ctx context.Context) []models.Account

	// ReplaceAccounts overwrites the whole persisted collection.
	ReplaceAccounts(ctx context.Context, accounts []models.Account) error

	// ActiveAccount returns the current-session snapshot. ok is false when
	// there is none or it cannot be decoded.
	ActiveAccount(ctx context.Context) (account models.Account, ok bool)

	// SetActiveAccount persists a snapshot of account as the current session.
	SetActiveAccount(ctx context.Context, account models.Account) error

	// ClearActiveAccount removes the current-session snapshot.
	ClearActiveAccount(ctx context.Context) error

	// UpsertAndSyncActive writes account as the current-session snapshot and
	// overwrites the account with the same id in the collection. An id that
	// is not in the collection leaves the collection unchanged. When the
	// collection write fails the previous snapshot is restored.
	UpsertAndSyncActive(ctx context.Context, account models.Account) error
}
