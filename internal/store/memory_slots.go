// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"sync"
)

// memorySlots is a process-local [SlotStore] used for ":memory:" DSNs and
// tests. Values are copied on the way in and out.
type memorySlots struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemorySlotStore returns an empty in-memory [SlotStore].
func NewMemorySlotStore() SlotStore {
	return &memorySlots{slots: make(map[string][]byte)}
}

func (m *memorySlots) Get(_ context.Context, name string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.slots[name]
	return slices.Clone(v), ok, nil
}

func (m *memorySlots) Put(_ context.Context, name string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots[name] = slices.Clone(value)
	return nil
}

func (m *memorySlots) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.slots, name)
	return nil
}
