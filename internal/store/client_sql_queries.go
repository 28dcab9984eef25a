// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getLocalCollection = `
		SELECT data
		FROM local_collections
		WHERE storage_key = $1;`

	saveLocalCollection = `
		INSERT INTO local_collections (storage_key, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (storage_key) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at;`

	ensureLocalCollection = `
		INSERT INTO local_collections (storage_key, data, updated_at)
		VALUES ($1, '[]', $2)
		ON CONFLICT (storage_key) DO NOTHING;`

	getLocalSyncState = `
		SELECT state
		FROM local_sync_state
		WHERE storage_key = $1;`

	saveLocalSyncState = `
		INSERT INTO local_sync_state (storage_key, state, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (storage_key) DO UPDATE SET
			state = excluded.state,
			updated_at = excluded.updated_at;`
)
