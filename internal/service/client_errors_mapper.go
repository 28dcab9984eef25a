// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/dcms-sync/internal/adapter"
	"github.com/MKhiriev/dcms-sync/internal/app"
)

// mapAdapterError translates the adapter's transport error into an engine
// error. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var mapped error

	switch {
	case errors.Is(err, adapter.ErrServerUnavailable):
		mapped = ErrServerUnreachable

	case errors.Is(err, adapter.ErrMalformedPayload):
		mapped = ErrMalformedReply

	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrPayloadTooLarge):
		mapped = ErrPayloadRejected
		if extractBody(err) == app.MsgUnknownCollection {
			mapped = ErrUnknownCollection
		}

	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		mapped = ErrOriginUnauthorized

	case errors.Is(err, adapter.ErrNotFound):
		mapped = ErrUnknownCollection

	case errors.Is(err, adapter.ErrConflict):
		mapped = ErrWriteConflict

	case errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable):
		mapped = ErrServerFailure

	default:
		return err
	}

	return fmt.Errorf("%w: %w", mapped, err)
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
