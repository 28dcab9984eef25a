// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/dcms-sync/internal/logger"
)

func TestWithRetry(t *testing.T) {
	db := &DB{errorClassificator: NewPostgresErrorClassifier(), logger: logger.Nop()}

	t.Run("succeeds after transient errors", func(t *testing.T) {
		calls := 0
		err := db.WithRetry(context.Background(), func(ctx context.Context) error {
			calls++
			if calls < 3 {
				return pgError(pgerrcode.DeadlockDetected)
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on non-retryable", func(t *testing.T) {
		calls := 0
		err := db.WithRetry(context.Background(), func(ctx context.Context) error {
			calls++
			return pgError(pgerrcode.UniqueViolation)
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after budget", func(t *testing.T) {
		calls := 0
		err := db.WithRetry(context.Background(), func(ctx context.Context) error {
			calls++
			return pgError(pgerrcode.SerializationFailure)
		})
		require.Error(t, err)
		assert.Equal(t, len(retryDelays)+1, calls)
	})

	t.Run("honours cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := db.WithRetry(ctx, func(ctx context.Context) error {
			return pgError(pgerrcode.SerializationFailure)
		})
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("no classifier never retries", func(t *testing.T) {
		plain := &DB{}
		calls := 0
		err := plain.WithRetry(context.Background(), func(ctx context.Context) error {
			calls++
			return errors.New("x")
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}
