package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/dcms-sync/internal/logger"
	"github.com/MKhiriev/dcms-sync/internal/mock"
	"github.com/MKhiriev/dcms-sync/internal/service"
	"github.com/MKhiriev/dcms-sync/models"
)

type testHandler struct {
	*Handler
	sync    *mock.MockSyncService
	auth    *mock.MockAuthService
	appInfo *mock.MockAppInfoService
	router  http.Handler
}

// newTestHandler builds a router over mocked services. Authentication is
// disabled unless the test sets its own Enabled expectation first.
func newTestHandler(t *testing.T, authEnabled bool) *testHandler {
	t.Helper()

	ctrl := gomock.NewController(t)
	th := &testHandler{
		sync:    mock.NewMockSyncService(ctrl),
		auth:    mock.NewMockAuthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	th.auth.EXPECT().Enabled().Return(authEnabled).AnyTimes()

	th.Handler = NewHandler(&service.Services{
		SyncService:    th.sync,
		AuthService:    th.auth,
		AppInfoService: th.appInfo,
	}, logger.Nop())
	th.now = func() time.Time { return time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC) }
	th.router = th.Init()

	return th
}

func (th *testHandler) do(t *testing.T, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	require.True(t, len(headers)%2 == 0, "headers must be key/value pairs")

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for i := 0; i < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	th.router.ServeHTTP(rr, req)
	return rr
}

func records(t *testing.T, raws ...string) []models.Record {
	t.Helper()
	out := make([]models.Record, 0, len(raws))
	for _, raw := range raws {
		var r models.Record
		require.NoError(t, r.UnmarshalJSON([]byte(raw)))
		out = append(out, r)
	}
	return out
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}
