// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"strings"
)

// Credential is the salted password hash stored for an account.
// The plaintext password is never persisted.
type Credential struct {
	// Algorithm names the key-derivation function, e.g. "argon2id".
	Algorithm string `json:"algorithm"`

	// Salt is the base64-encoded random salt.
	Salt string `json:"salt"`

	// Hash is the base64-encoded derived key.
	Hash string `json:"hash"`

	// Time, MemoryKiB and Threads are the Argon2id cost parameters the hash
	// was derived with. Zero means the hasher's configured value.
	Time      uint32 `json:"time,omitempty"`
	MemoryKiB uint32 `json:"memoryKiB,omitempty"`
	Threads   uint8  `json:"threads,omitempty"`
}

// Account is a registered user together with all of their data.
//
// Account values are treated as immutable snapshots: every change produces
// a new value through one of the With* helpers, which never share slices
// with the receiver.
type Account struct {
	// ID is the opaque unique identifier of the account.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Email is the login key, unique across accounts ignoring case.
	Email string `json:"email"`

	// Credential holds the salted password hash.
	Credential Credential `json:"credential"`

	// Settings holds the daily goals.
	Settings GoalSettings `json:"settings"`

	// Records holds the food and water collections.
	Records Records `json:"records"`
}

// Goals returns the account goals with defaults applied.
func (a Account) Goals() GoalSettings {
	return a.Settings.Normalized()
}

// EmailMatches compares email with the account email ignoring case and
// surrounding whitespace.
func (a Account) EmailMatches(email string) bool {
	return NormalizeEmail(a.Email) == NormalizeEmail(email)
}

// Clone returns a deep copy of the account.
func (a Account) Clone() Account {
	a.Records.Food = slices.Clone(a.Records.Food)
	a.Records.Water = slices.Clone(a.Records.Water)
	if a.Records.Food == nil {
		a.Records.Food = []FoodRecord{}
	}
	if a.Records.Water == nil {
		a.Records.Water = []WaterRecord{}
	}
	return a
}

// WithFood returns a copy of the account with rec appended to the food
// collection.
func (a Account) WithFood(rec FoodRecord) Account {
	next := a.Clone()
	next.Records.Food = append(next.Records.Food, rec)
	return next
}

// WithoutFood returns a copy of the account without the food record
// identified by id. Unknown ids leave the collection unchanged.
func (a Account) WithoutFood(id string) Account {
	next := a.Clone()
	next.Records.Food = slices.DeleteFunc(next.Records.Food, func(f FoodRecord) bool {
		return f.ID == id
	})
	return next
}

// WithWater returns a copy of the account with rec appended to the water
// collection.
func (a Account) WithWater(rec WaterRecord) Account {
	next := a.Clone()
	next.Records.Water = append(next.Records.Water, rec)
	return next
}

// WithProfile returns a copy of the account with a new display name and
// goals.
func (a Account) WithProfile(name string, goals GoalSettings) Account {
	next := a.Clone()
	next.Name = name
	next.Settings = goals.Normalized()
	return next
}

// FoodNewestFirst returns the food records in reverse insertion order.
func (a Account) FoodNewestFirst() []FoodRecord {
	out := slices.Clone(a.Records.Food)
	slices.Reverse(out)
	return out
}

// NormalizeEmail lower-cases and trims an email for comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
