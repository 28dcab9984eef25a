// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of data crossing the sync boundary.
// The server validates every pushed payload before it touches storage and
// the client validates every pulled payload before merging it. Rejected
// payloads are reported instead of being merged as garbage.
package validators

import "context"

// Validator checks a collection name, a record list or a change list.
// fields narrows the check to named parts of v where the type supports it.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
