// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-calcufit/internal/config"
	"github.com/MKhiriev/go-calcufit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cheap parameters keep the tests fast
var testAuth = config.Auth{ArgonTime: 1, ArgonMemoryKiB: 64, ArgonThreads: 1}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestArgon2Hasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher(testAuth)

	cred, err := h.Hash("s3nha")
	require.NoError(t, err)

	assert.Equal(t, AlgorithmArgon2id, cred.Algorithm)
	assert.NotEmpty(t, cred.Salt)
	assert.NotEmpty(t, cred.Hash)
	assert.NotContains(t, cred.Hash, "s3nha")

	assert.True(t, h.Verify(cred, "s3nha"))
	assert.False(t, h.Verify(cred, "S3nha"))
	assert.False(t, h.Verify(cred, ""))
}

func TestArgon2Hasher_VerifyAfterRetuning(t *testing.T) {
	old := NewPasswordHasher(config.Auth{ArgonTime: 1, ArgonMemoryKiB: 1024, ArgonThreads: 1})
	cred, err := old.Hash("secret")
	require.NoError(t, err)

	assert.Equal(t, uint32(1), cred.Time)
	assert.Equal(t, uint32(1024), cred.MemoryKiB)
	assert.Equal(t, uint8(1), cred.Threads)

	retuned := NewPasswordHasher(config.Auth{ArgonTime: 2, ArgonMemoryKiB: 2048, ArgonThreads: 2})
	assert.True(t, retuned.Verify(cred, "secret"))
	assert.False(t, retuned.Verify(cred, "Secret"))
}

func TestArgon2Hasher_VerifyWithoutStoredParams(t *testing.T) {
	h := NewPasswordHasher(testAuth)
	cred, err := h.Hash("secret")
	require.NoError(t, err)

	cred.Time, cred.MemoryKiB, cred.Threads = 0, 0, 0
	assert.True(t, h.Verify(cred, "secret"))

	other := NewPasswordHasher(config.Auth{ArgonTime: 2, ArgonMemoryKiB: 64, ArgonThreads: 1})
	assert.False(t, other.Verify(cred, "secret"))
}

func TestArgon2Hasher_SaltIsRandom(t *testing.T) {
	h := NewPasswordHasher(testAuth)

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a.Salt, b.Salt)
	assert.NotEqual(t, a.Hash, b.Hash)
}

func TestArgon2Hasher_VerifyMalformed(t *testing.T) {
	h := NewPasswordHasher(testAuth)
	good, err := h.Hash("pw")
	require.NoError(t, err)

	tests := []struct {
		name string
		cred models.Credential
	}{
		{name: "empty", cred: models.Credential{}},
		{name: "wrong algorithm", cred: models.Credential{Algorithm: "plain", Salt: good.Salt, Hash: good.Hash}},
		{name: "bad salt", cred: models.Credential{Algorithm: AlgorithmArgon2id, Salt: "%%%", Hash: good.Hash}},
		{name: "bad hash", cred: models.Credential{Algorithm: AlgorithmArgon2id, Salt: good.Salt, Hash: "%%%"}},
		{name: "short hash", cred: models.Credential{Algorithm: AlgorithmArgon2id, Salt: good.Salt, Hash: "AAAA"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, h.Verify(tt.cred, "pw"))
		})
	}
}

func TestArgon2Hasher_HashRandomFailure(t *testing.T) {
	h := &argon2Hasher{time: 1, memory: 64, threads: 1, rand: failingReader{}}

	_, err := h.Hash("pw")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate salt")
}
