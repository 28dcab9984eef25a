package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/dcms-sync/internal/app"
	"github.com/MKhiriev/dcms-sync/internal/service"
	"github.com/MKhiriev/dcms-sync/internal/store"
	"github.com/MKhiriev/dcms-sync/internal/validators"
	"github.com/MKhiriev/dcms-sync/models"
)

func TestGetCollection_ServesRawRecords(t *testing.T) {
	th := newTestHandler(t, false)
	raw := `{"id":"b1",  "price": 12.50}`
	th.sync.EXPECT().GetCollection(gomock.Any(), models.Bookings).Return(records(t, raw), nil)

	rr := th.do(t, http.MethodGet, "/api/sync/bookings", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, "["+raw+"]", rr.Body.String())
}

func TestGetCollection_NeverPushedIsEmptyArray(t *testing.T) {
	th := newTestHandler(t, false)
	th.sync.EXPECT().GetCollection(gomock.Any(), models.Equipment).Return([]models.Record{}, nil)

	rr := th.do(t, http.MethodGet, "/api/sync/equipment", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
}

func TestSyncRoutes_UnknownResource(t *testing.T) {
	th := newTestHandler(t, false)

	for _, tt := range []struct{ method, target string }{
		{http.MethodGet, "/api/sync/divers"},
		{http.MethodPost, "/api/sync/divers"},
		{http.MethodGet, "/api/sync/divers/lastUpdate"},
		{http.MethodGet, "/api/sync/divers/records?since=0"},
	} {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rr := th.do(t, tt.method, tt.target, `[]`)

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, app.MsgUnknownCollection, strings.TrimSpace(rr.Body.String()))
		})
	}
}

func TestReplaceCollection(t *testing.T) {
	th := newTestHandler(t, false)
	th.sync.EXPECT().
		ReplaceCollection(gomock.Any(), models.Customers, records(t, `{"id":"c1"}`, `{"id":"c2"}`)).
		Return(models.PushResponse{Success: true, Count: 2, LastUpdate: 1_700_000_000_000}, nil)

	rr := th.do(t, http.MethodPost, "/api/sync/customers", `[{"id":"c1"},{"id":"c2"}]`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"count":2,"lastUpdate":1700000000000}`, rr.Body.String())
}

func TestReplaceCollection_BadBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "object", body: `{"id":"c1"}`, want: app.MsgNotAnArray},
		{name: "null", body: `null`, want: app.MsgNotAnArray},
		{name: "garbage", body: `[{"id":`, want: app.MsgNotAnArray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t, false)

			rr := th.do(t, http.MethodPost, "/api/sync/customers", tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tt.want, strings.TrimSpace(rr.Body.String()))
		})
	}
}

func TestReplaceCollection_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "invalid records",
			err:        fmt.Errorf("error during records validation before saving: %w", validators.ErrInvalidRecordID),
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidRecords,
		},
		{
			name:       "version conflict",
			err:        fmt.Errorf("replacing collection failed: %w", store.ErrVersionConflict),
			wantStatus: http.StatusConflict,
			wantBody:   app.MsgVersionConflict,
		},
		{
			name:       "database down",
			err:        fmt.Errorf("%w: dial", store.ErrBeginningTransaction),
			wantStatus: http.StatusInternalServerError,
			wantBody:   app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t, false)
			th.sync.EXPECT().ReplaceCollection(gomock.Any(), models.Bookings, gomock.Any()).Return(models.PushResponse{}, tt.err)

			rr := th.do(t, http.MethodPost, "/api/sync/bookings", `[{"id":1}]`)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantBody, strings.TrimSpace(rr.Body.String()))
		})
	}
}

func TestLastUpdate(t *testing.T) {
	th := newTestHandler(t, false)
	ms := int64(1_700_000_000_000)
	th.sync.EXPECT().LastUpdate(gomock.Any(), models.Bookings).Return(models.LastUpdateResponse{LastUpdate: &ms}, nil)
	th.sync.EXPECT().LastUpdate(gomock.Any(), models.Locations).Return(models.LastUpdateResponse{}, nil)

	rr := th.do(t, http.MethodGet, "/api/sync/bookings/lastUpdate", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"lastUpdate":1700000000000}`, rr.Body.String())

	rr = th.do(t, http.MethodGet, "/api/sync/locations/lastUpdate", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"lastUpdate":null}`, rr.Body.String())
}

func TestGetAll_ListsEveryKnownCollection(t *testing.T) {
	th := newTestHandler(t, false)
	th.sync.EXPECT().GetAll(gomock.Any()).Return(models.Snapshot{
		models.Bookings: records(t, `{"id":"b1"}`),
	}, nil)

	rr := th.do(t, http.MethodGet, "/api/sync/all", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"bookings":[{"id":"b1"}],"customers":[],"locations":[],"equipment":[]}`, rr.Body.String())
}

func TestGetAll_Error(t *testing.T) {
	th := newTestHandler(t, false)
	th.sync.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("redis down"))

	rr := th.do(t, http.MethodGet, "/api/sync/all", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetRecordsSince(t *testing.T) {
	th := newTestHandler(t, false)
	th.sync.EXPECT().GetRecordsSince(gomock.Any(), models.Bookings, int64(5)).Return([]models.VersionedRecord{
		{ID: "b1", Version: 6, Data: json.RawMessage(`{"id":"b1"}`)},
		{ID: "b2", Version: 7, Deleted: true},
	}, nil)
	th.sync.EXPECT().GetRecordsSince(gomock.Any(), models.Bookings, int64(0)).Return(nil, nil)

	rr := th.do(t, http.MethodGet, "/api/sync/bookings/records?since=5", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var got []models.VersionedRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, int64(7), got[1].Version)
	assert.True(t, got[1].Deleted)

	rr = th.do(t, http.MethodGet, "/api/sync/bookings/records", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
}

func TestGetRecordsSince_InvalidCursor(t *testing.T) {
	th := newTestHandler(t, false)

	for _, since := range []string{"-1", "abc", "1.5"} {
		rr := th.do(t, http.MethodGet, "/api/sync/bookings/records?since="+since, "")

		assert.Equal(t, http.StatusBadRequest, rr.Code, since)
		assert.Equal(t, app.MsgInvalidCursor, strings.TrimSpace(rr.Body.String()))
	}
}

func TestUpsertRecords(t *testing.T) {
	th := newTestHandler(t, false)
	changes := []models.RecordChange{
		{ID: "b1", Data: json.RawMessage(`{"id":"b1"}`)},
		{ID: "b2", Deleted: true},
	}
	th.sync.EXPECT().UpsertRecords(gomock.Any(), models.Bookings, changes).
		Return([]models.UpsertResult{{ID: "b1", Version: 3}, {ID: "b2", Version: 4, Deleted: true}}, nil)

	rr := th.do(t, http.MethodPut, "/api/sync/bookings/records", `[{"id":"b1","data":{"id":"b1"}},{"id":"b2","deleted":true}]`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":"b1","version":3,"deleted":false},{"id":"b2","version":4,"deleted":true}]`, rr.Body.String())
}

func TestUpsertRecords_Errors(t *testing.T) {
	th := newTestHandler(t, false)
	th.sync.EXPECT().UpsertRecords(gomock.Any(), models.Bookings, gomock.Any()).Return(nil, service.ErrValidationNoChangesProvided)

	rr := th.do(t, http.MethodPut, "/api/sync/bookings/records", `{"not":"a list"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, strings.TrimSpace(rr.Body.String()))

	rr = th.do(t, http.MethodPut, "/api/sync/bookings/records", `[]`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgNoChangesProvided, strings.TrimSpace(rr.Body.String()))
}

func TestMethodNotAllowed(t *testing.T) {
	th := newTestHandler(t, false)

	rr := th.do(t, http.MethodDelete, "/api/sync/bookings", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Contains(t, rr.Header().Get("Allow"), http.MethodGet)
	assert.Contains(t, rr.Header().Get("Allow"), http.MethodPost)

	rr = th.do(t, http.MethodPost, "/health", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, http.MethodGet, rr.Header().Get("Allow"))
}

func TestHealthAndVersion(t *testing.T) {
	th := newTestHandler(t, true)
	th.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.4.0 (abc, 2026-01-02)")

	rr := th.do(t, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok","timestamp":"2026-05-01T10:00:00Z"}`, rr.Body.String())

	rr = th.do(t, http.MethodGet, "/api/version", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "v1.4.0 (abc, 2026-01-02)", rr.Body.String())
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
}
