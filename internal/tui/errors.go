// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/dcms-sync/internal/adapter"
)

func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrServerUnavailable):
		return "sync server unreachable"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "sync server rejected the origin token"
	case errors.Is(err, adapter.ErrMalformedPayload):
		return "sync server sent invalid data"
	default:
		return err.Error()
	}
}
