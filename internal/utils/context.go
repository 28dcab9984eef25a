// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, content hashing,
// HTTP response writing, HTTP client initialization, origin token generation
// and validation, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// OriginCtxKey is the key used to store the authenticated origin name
// (the JWT subject) in the request context.
//
//	ctx := context.WithValue(ctx, utils.OriginCtxKey, "admin")
var OriginCtxKey = contextKey("origin")

// WithOrigin returns a copy of ctx carrying origin.
func WithOrigin(ctx context.Context, origin string) context.Context {
	return context.WithValue(ctx, OriginCtxKey, origin)
}

// GetOriginFromContext retrieves the origin name from the context.
//
// Returns the origin and an ok flag:
//   - ok == true:  value is found, is a string and is not empty
//   - ok == false: value is missing, empty or has an unexpected type
func GetOriginFromContext(ctx context.Context) (string, bool) {
	origin, ok := ctx.Value(OriginCtxKey).(string)
	return origin, ok && origin != ""
}
