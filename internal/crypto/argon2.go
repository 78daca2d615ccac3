// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/MKhiriev/go-calcufit/internal/config"
	"github.com/MKhiriev/go-calcufit/models"
	"golang.org/x/crypto/argon2"
)

// AlgorithmArgon2id is the Credential.Algorithm value written by
// [argon2Hasher].
const AlgorithmArgon2id = "argon2id"

const (
	saltLen = 16
	keyLen  = 32
)

// argon2Hasher is the Argon2id implementation of [PasswordHasher].
type argon2Hasher struct {
	time    uint32
	memory  uint32
	threads uint8
	rand    io.Reader
}

// NewPasswordHasher constructs a [PasswordHasher] with the Argon2id cost
// parameters from cfg.
func NewPasswordHasher(cfg config.Auth) PasswordHasher {
	return &argon2Hasher{
		time:    cfg.ArgonTime,
		memory:  cfg.ArgonMemoryKiB,
		threads: cfg.ArgonThreads,
		rand:    rand.Reader,
	}
}

// Hash implements [PasswordHasher]. It reads a 16-byte salt from the CSPRNG
// and derives a 256-bit key with Argon2id.
func (h *argon2Hasher) Hash(password string) (models.Credential, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(h.rand, salt); err != nil {
		return models.Credential{}, fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.time, h.memory, h.threads, keyLen)

	return models.Credential{
		Algorithm: AlgorithmArgon2id,
		Salt:      base64.StdEncoding.EncodeToString(salt),
		Hash:      base64.StdEncoding.EncodeToString(key),
		Time:      h.time,
		MemoryKiB: h.memory,
		Threads:   h.threads,
	}, nil
}

// Verify implements [PasswordHasher]. The key is re-derived with the cost
// parameters stored in cred. The comparison is constant-time.
func (h *argon2Hasher) Verify(cred models.Credential, password string) bool {
	if cred.Algorithm != AlgorithmArgon2id {
		return false
	}

	salt, err := base64.StdEncoding.DecodeString(cred.Salt)
	if err != nil || len(salt) == 0 {
		return false
	}
	want, err := base64.StdEncoding.DecodeString(cred.Hash)
	if err != nil || len(want) != keyLen {
		return false
	}

	got := h.derive(cred, password, salt)
	return subtle.ConstantTimeCompare(got, want) == 1
}

// derive uses the parameters recorded in cred, falling back to the
// configured ones for credentials written without them.
func (h *argon2Hasher) derive(cred models.Credential, password string, salt []byte) []byte {
	passes, memory, threads := cred.Time, cred.MemoryKiB, cred.Threads
	if passes == 0 {
		passes = h.time
	}
	if memory == 0 {
		memory = h.memory
	}
	if threads == 0 {
		threads = h.threads
	}
	return argon2.IDKey([]byte(password), salt, passes, memory, threads, keyLen)
}
