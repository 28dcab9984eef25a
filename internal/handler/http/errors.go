// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Reasons the auth middleware rejects a request. They are logged, never sent.
var (
	ErrEmptyAuthorizationHeader   = errors.New("no authorization header")
	ErrInvalidAuthorizationHeader = errors.New("authorization header is not a bearer token")
	ErrEmptyToken                 = errors.New("bearer token is empty")
)

// ErrContentHashMismatch is logged when a pushed body does not match the
// digest announced in its X-Content-Hash header.
var ErrContentHashMismatch = errors.New("request body does not match X-Content-Hash")
