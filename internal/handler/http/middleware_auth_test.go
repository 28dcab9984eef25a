package http

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/dcms-sync/internal/app"
	"github.com/MKhiriev/dcms-sync/internal/service"
	"github.com/MKhiriev/dcms-sync/internal/utils"
	"github.com/MKhiriev/dcms-sync/models"
)

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid Bearer token", header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "lowercase scheme", header: "bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "missing token part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "extra parts", header: "Bearer a b", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuth_Disabled_PassesAnonymously(t *testing.T) {
	th := newTestHandler(t, false)
	th.sync.EXPECT().GetCollection(gomock.Any(), models.Bookings).DoAndReturn(
		func(ctx context.Context, _ models.Collection) ([]models.Record, error) {
			_, ok := ctx.Value(utils.OriginCtxKey).(string)
			assert.False(t, ok)
			return nil, nil
		})

	rr := th.do(t, http.MethodGet, "/api/sync/bookings", "")

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAuth_Enabled(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		parseErr   error
		parse      bool
		wantStatus int
		wantBody   string
	}{
		{name: "no header", wantStatus: http.StatusUnauthorized, wantBody: app.MsgMissingToken},
		{name: "bad scheme", header: "Token abc", wantStatus: http.StatusUnauthorized, wantBody: app.MsgMissingToken},
		{name: "invalid token", header: "Bearer abc", parse: true, parseErr: service.ErrTokenIsExpiredOrInvalid, wantStatus: http.StatusUnauthorized, wantBody: app.MsgTokenIsExpiredOrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t, true)
			if tt.parse {
				th.auth.EXPECT().ParseToken(gomock.Any(), "abc").Return(models.Token{}, tt.parseErr)
			}

			var headers []string
			if tt.header != "" {
				headers = []string{"Authorization", tt.header}
			}
			rr := th.do(t, http.MethodGet, "/api/sync/bookings", "", headers...)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantBody, strings.TrimSpace(rr.Body.String()))
		})
	}
}

func TestAuth_Enabled_StoresOrigin(t *testing.T) {
	th := newTestHandler(t, true)
	th.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(models.Token{Origin: "admin"}, nil)
	th.sync.EXPECT().ReplaceCollection(gomock.Any(), models.Customers, gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ models.Collection, recs []models.Record) (models.PushResponse, error) {
			origin, _ := ctx.Value(utils.OriginCtxKey).(string)
			assert.Equal(t, "admin", origin)
			return models.PushResponse{Success: true, Count: len(recs)}, nil
		})

	rr := th.do(t, http.MethodPost, "/api/sync/customers", `[{"id":"c1"}]`, "Authorization", "Bearer good")

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAuth_HealthIsPublic(t *testing.T) {
	th := newTestHandler(t, true)

	rr := th.do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rr.Code)
}
