// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyOrigin is returned when a token carries no origin in its subject.
var ErrEmptyOrigin = errors.New("token subject has no origin")

// Token wraps an origin access token.
//
// The "sub" claim names the origin that pushes data (for example "public" or
// "admin"). The server records it on every record the origin writes.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`

	// Origin is a cached copy of the subject claim.
	Origin string `json:"-"`
}

// GetOrigin returns the origin named by the subject claim.
func (t *Token) GetOrigin() (string, error) {
	origin, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting origin from token: %w", err)
	}
	if origin == "" {
		return "", ErrEmptyOrigin
	}
	return origin, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
