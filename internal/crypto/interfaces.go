// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto provides the password hashing used to protect account
// credentials in the local store.
package crypto

import "github.com/MKhiriev/go-calcufit/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted credentials and
// checks candidates against them.
type PasswordHasher interface {
	// Hash derives a new credential from password with a fresh random salt.
	// Returns an error only if the random source fails.
	Hash(password string) (models.Credential, error)

	// Verify reports whether password matches cred. Malformed credentials
	// never match.
	Verify(cred models.Credential, password string) bool
}
