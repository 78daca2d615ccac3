// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getSlot = `
		SELECT value
		FROM slots
		WHERE name = ?;`

	putSlot = `
		INSERT INTO slots (name, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at;`

	deleteSlot = `
		DELETE FROM slots
		WHERE name = ?;`
)
