// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-calcufit/internal/logger"
	"github.com/MKhiriev/go-calcufit/models"
)

// Slot names. They are part of the persisted layout and must not change.
const (
	SlotUsers       = "users"
	SlotCurrentUser = "current_user"
)

type recordStore struct {
	slots  SlotStore
	logger *logger.Logger
}

// NewRecordStore constructs a [RecordStore] on top of slots.
func NewRecordStore(slots SlotStore, logger *logger.Logger) RecordStore {
	return &recordStore{slots: slots, logger: logger}
}

func (r *recordStore) ListAccounts(ctx context.Context) []models.Account {
	raw, ok := r.read(ctx, SlotUsers)
	if !ok {
		return []models.Account{}
	}

	accounts, err := decodeAccounts(raw)
	if err != nil {
		r.logger.Warn().Err(err).
			Str("func", "*recordStore.ListAccounts").
			Str("slot", SlotUsers).
			Msg("ignoring unreadable accounts")
		return []models.Account{}
	}

	return accounts
}

func (r *recordStore) ReplaceAccounts(ctx context.Context, accounts []models.Account) error {
	if accounts == nil {
		accounts = []models.Account{}
	}

	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodingAccounts, err)
	}

	return r.slots.Put(ctx, SlotUsers, raw)
}

func (r *recordStore) ActiveAccount(ctx context.Context) (models.Account, bool) {
	raw, ok := r.read(ctx, SlotCurrentUser)
	if !ok {
		return models.Account{}, false
	}

	account, err := decodeAccount(raw)
	if err != nil {
		r.logger.Warn().Err(err).
			Str("func", "*recordStore.ActiveAccount").
			Str("slot", SlotCurrentUser).
			Msg("ignoring unreadable active account")
		return models.Account{}, false
	}

	return account, true
}

func (r *recordStore) SetActiveAccount(ctx context.Context, account models.Account) error {
	raw, err := json.Marshal(account.Clone())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodingAccounts, err)
	}

	return r.slots.Put(ctx, SlotCurrentUser, raw)
}

func (r *recordStore) ClearActiveAccount(ctx context.Context) error {
	return r.slots.Delete(ctx, SlotCurrentUser)
}

// UpsertAndSyncActive writes "current_user" first, then "users". When the
// collection write fails the previous "current_user" value is put back so
// both slots keep describing the same account.
func (r *recordStore) UpsertAndSyncActive(ctx context.Context, account models.Account) error {
	previous, hadPrevious := r.read(ctx, SlotCurrentUser)

	if err := r.SetActiveAccount(ctx, account); err != nil {
		return err
	}

	accounts := r.ListAccounts(ctx)
	for i := range accounts {
		if accounts[i].ID == account.ID {
			accounts[i] = account.Clone()
			if err := r.ReplaceAccounts(ctx, accounts); err != nil {
				r.restoreActive(ctx, previous, hadPrevious)
				return err
			}
			return nil
		}
	}

	r.logger.Debug().
		Str("func", "*recordStore.UpsertAndSyncActive").
		Str("account_id", account.ID).
		Msg("account not in collection, collection left unchanged")
	return nil
}

// restoreActive puts back the "current_user" value read before a failed
// sync. Failures are logged only; the caller already reports the write error.
func (r *recordStore) restoreActive(ctx context.Context, previous []byte, hadPrevious bool) {
	var err error
	if hadPrevious {
		err = r.slots.Put(ctx, SlotCurrentUser, previous)
	} else {
		err = r.slots.Delete(ctx, SlotCurrentUser)
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "*recordStore.restoreActive").
			Msg("cannot roll back active account, slots may disagree")
		return
	}
	r.logger.Warn().
		Str("func", "*recordStore.restoreActive").
		Msg("account collection write failed, active account rolled back")
}

// read fetches a slot and reports read failures as absence.
func (r *recordStore) read(ctx context.Context, name string) ([]byte, bool) {
	raw, ok, err := r.slots.Get(ctx, name)
	if err != nil {
		r.logger.Warn().Err(err).
			Str("func", "*recordStore.read").
			Str("slot", name).
			Msg("slot unreadable, treating as absent")
		return nil, false
	}
	return raw, ok
}

// decodeAccounts decodes the "users" slot. The slot is first read as an
// array of opaque values so that a single malformed account does not hide
// the shape error of the whole envelope.
func decodeAccounts(raw []byte) ([]models.Account, error) {
	var envelope []json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptedSlot, err)
	}

	accounts := make([]models.Account, 0, len(envelope))
	for i, item := range envelope {
		account, err := decodeAccount(item)
		if err != nil {
			return nil, fmt.Errorf("account #%d: %w", i, err)
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}

func decodeAccount(raw []byte) (models.Account, error) {
	var account models.Account
	if err := json.Unmarshal(raw, &account); err != nil {
		return models.Account{}, fmt.Errorf("%w: %v", ErrCorruptedSlot, err)
	}
	if account.ID == "" || account.Email == "" {
		return models.Account{}, fmt.Errorf("%w: account without id or email", ErrCorruptedSlot)
	}

	return account.Clone(), nil
}
