// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestOriginCtxKey(t *testing.T) {
	if OriginCtxKey.String() != "origin" {
		t.Errorf("expected 'origin', got '%s'", OriginCtxKey.String())
	}
}

func TestGetOriginFromContext_Success(t *testing.T) {
	ctx := WithOrigin(context.Background(), "admin")

	origin, ok := GetOriginFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if origin != "admin" {
		t.Errorf("expected origin=admin, got %s", origin)
	}
}

func TestGetOriginFromContext_Missing(t *testing.T) {
	origin, ok := GetOriginFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if origin != "" {
		t.Errorf("expected empty origin, got %s", origin)
	}
}

func TestGetOriginFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), OriginCtxKey, 42)

	if _, ok := GetOriginFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetOriginFromContext_Empty(t *testing.T) {
	ctx := WithOrigin(context.Background(), "")

	if _, ok := GetOriginFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty origin, got true")
	}
}

func TestGetOriginFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("other"), "public")

	if _, ok := GetOriginFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
