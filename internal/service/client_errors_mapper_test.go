package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/dcms-sync/internal/adapter"
	"github.com/MKhiriev/dcms-sync/internal/app"
)

func TestMapAdapterError(t *testing.T) {
	other := errors.New("something else")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "transport", err: fmt.Errorf("%w: dial tcp", adapter.ErrServerUnavailable), want: ErrServerUnreachable},
		{name: "malformed", err: fmt.Errorf("%w: index 0", adapter.ErrMalformedPayload), want: ErrMalformedReply},
		{name: "bad request", err: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgInvalidRecords), want: ErrPayloadRejected},
		{name: "unknown collection body", err: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgUnknownCollection), want: ErrUnknownCollection},
		{name: "too large", err: fmt.Errorf("%w: too big", adapter.ErrPayloadTooLarge), want: ErrPayloadRejected},
		{name: "unauthorized", err: fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgMissingToken), want: ErrOriginUnauthorized},
		{name: "forbidden", err: adapter.ErrForbidden, want: ErrOriginUnauthorized},
		{name: "not found", err: adapter.ErrNotFound, want: ErrUnknownCollection},
		{name: "conflict", err: adapter.ErrConflict, want: ErrWriteConflict},
		{name: "server error", err: adapter.ErrInternalServerError, want: ErrServerFailure},
		{name: "bad gateway", err: adapter.ErrBadGateway, want: ErrServerFailure},
		{name: "unavailable", err: adapter.ErrServiceUnavailable, want: ErrServerFailure},
		{name: "unmapped", err: other, want: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.err)

			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}
