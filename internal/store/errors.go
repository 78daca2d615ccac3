// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by store methods. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrSlotWrite is returned when a slot cannot be written or deleted.
	ErrSlotWrite = errors.New("failed to write slot")

	// ErrSlotRead is returned by slot stores when a slot cannot be read.
	// RecordStore swallows it.
	ErrSlotRead = errors.New("failed to read slot")

	// ErrEncodingAccounts is returned when accounts cannot be serialized.
	ErrEncodingAccounts = errors.New("failed to encode accounts")

	// ErrCorruptedSlot marks a slot whose content cannot be decoded into
	// accounts. It is logged, never returned by RecordStore.
	ErrCorruptedSlot = errors.New("corrupted slot")
)
