// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/dcms-sync/internal/config"
	"github.com/MKhiriev/dcms-sync/internal/logger"
	"github.com/MKhiriev/dcms-sync/internal/utils"
	"github.com/MKhiriev/dcms-sync/models"
)

// newTestAdapter creates an httpSyncAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string, app config.ClientApp) *httpSyncAdapter {
	t.Helper()
	a, err := NewHTTPSyncAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}, app, logger.Nop())
	require.NoError(t, err)
	return a.(*httpSyncAdapter)
}

func jsonReply(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// ── Health ──────────────────────────────────────────────────────────────────

func TestHealth_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/health", r.URL.Path)
		jsonReply(w, http.StatusOK, `{"status":"ok","timestamp":"2026-01-02T03:04:05Z"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.ClientApp{})
	got, err := a.Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "ok", got.Status)
	assert.Equal(t, 2026, got.Timestamp.Year())
}

func TestHealth_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url, config.ClientApp{})
	_, err := a.Health(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerUnavailable)
}

func TestHealth_Non2xxIsNotUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.ClientApp{})
	_, err := a.Health(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.NotErrorIs(t, err, ErrServerUnavailable)
}

// ── Pull ────────────────────────────────────────────────────────────────────

func TestPullCollection_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sync/bookings", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		jsonReply(w, http.StatusOK, `[{"id":"b1", "diver":"Ana"},{"id":"b2"}]`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.ClientApp{})
	got, err := a.PullCollection(context.Background(), models.Bookings)

	require.NoError(t, err)
	assert.Equal(t, []string{"b1", "b2"}, models.IDs(got))
	assert.Equal(t, `{"id":"b1", "diver":"Ana"}`, string(got[0].Raw))
}

func TestPullCollection_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "object instead of array", body: `{"id":"b1"}`},
		{name: "null", body: `null`},
		{name: "empty body", body: ``},
		{name: "missing id", body: `[{"diver":"Ana"}]`},
		{name: "numeric id", body: `[{"id":7}]`},
		{name: "duplicate ids", body: `[{"id":"b1"},{"id":"b1"}]`},
		{name: "not json", body: `<html>`},
		{name: "array of strings", body: `["b1"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				jsonReply(w, http.StatusOK, tt.body)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, config.ClientApp{})
			_, err := a.PullCollection(context.Background(), models.Bookings)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedPayload)
		})
	}
}

func TestPullCollection_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonReply(w, http.StatusNotFound, `{"error":"unknown collection"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.ClientApp{})
	_, err := a.PullCollection(context.Background(), models.Bookings)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPullAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sync/all", r.URL.Path)
		jsonReply(w, http.StatusOK, `{"bookings":[{"id":"b1"}],"customers":[],"legacy":[{"id":"x"}]}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.ClientApp{})
	got, err := a.PullAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, []string{"b1"}, models.IDs(got[models.Bookings]))
	assert.Empty(t, got[models.Customers])
}

// ── Push ────────────────────────────────────────────────────────────────────

func TestPushCollection_SendsVerbatimArray(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/sync/customers", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		assert.Equal(t, utils.HashString(b), r.Header.Get("X-Content-Hash"))
		jsonReply(w, http.StatusOK, `{"success":true,"count":2,"lastUpdate":1767323045000}`)
	}))
	defer srv.Close()

	var c1, c2 models.Record
	require.NoError(t, c1.UnmarshalJSON([]byte(`{"id":"c1",  "name":"Ana"}`)))
	require.NoError(t, c2.UnmarshalJSON([]byte(`{"id":"c2"}`)))

	a := newTestAdapter(t, srv.URL, config.ClientApp{})
	got, err := a.PushCollection(context.Background(), models.Customers, []models.Record{c1, c2})

	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, int64(1767323045000), got.LastUpdate)
	assert.Equal(t, `[{"id":"c1",  "name":"Ana"},{"id":"c2"}]`, body)
}

func TestPushCollection_EmptyArray(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		jsonReply(w, http.StatusOK, `{"success":true,"count":0,"lastUpdate":1}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.ClientApp{})
	_, err := a.PushCollection(context.Background(), models.Locations, nil)

	require.NoError(t, err)
	assert.Equal(t, `[]`, body)
}

func TestPushCollection_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonReply(w, http.StatusBadRequest, `{"error":"invalid records"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.ClientApp{})
	_, err := a.PushCollection(context.Background(), models.Locations, nil)

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.NotErrorIs(t, err, ErrServerUnavailable)
}

// ── Last update ─────────────────────────────────────────────────────────────

func TestLastUpdate(t *testing.T) {
	tests := []struct {
		name string
		body string
		want time.Time
	}{
		{name: "value", body: `{"lastUpdate":1767323045000}`, want: time.UnixMilli(1767323045000)},
		{name: "null", body: `{"lastUpdate":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/sync/equipment/lastUpdate", r.URL.Path)
				jsonReply(w, http.StatusOK, tt.body)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, config.ClientApp{})
			got, err := a.LastUpdate(context.Background(), models.Equipment)

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

// ── Record protocol ─────────────────────────────────────────────────────────

func TestUpsertRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/sync/bookings/records", r.URL.Path)
		b, _ := io.ReadAll(r.Body)
		assert.Equal(t, utils.HashString(b), r.Header.Get("X-Content-Hash"))
		jsonReply(w, http.StatusOK, `[{"id":"b1","version":4,"deleted":false},{"id":"b2","version":5,"deleted":true}]`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.ClientApp{})
	got, err := a.UpsertRecords(context.Background(), models.Bookings, []models.RecordChange{
		{ID: "b1", Data: []byte(`{"id":"b1"}`)},
		{ID: "b2", Deleted: true},
	})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(5), got[1].Version)
	assert.True(t, got[1].Deleted)
}

func TestUpsertRecords_ResultCountMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonReply(w, http.StatusOK, `[]`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.ClientApp{})
	_, err := a.UpsertRecords(context.Background(), models.Bookings, []models.RecordChange{{ID: "b1", Deleted: true}})

	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestPullRecordsSince(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sync/bookings/records", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("since"))
		jsonReply(w, http.StatusOK, `[{"id":"b1","version":8,"deleted":false,"data":{"id":"b1"}},{"id":"b2","version":9,"deleted":true}]`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.ClientApp{})
	got, err := a.PullRecordsSince(context.Background(), models.Bookings, 7)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.JSONEq(t, `{"id":"b1"}`, string(got[0].Data))
	assert.True(t, got[1].Deleted)
}

func TestPullRecordsSince_InvalidVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonReply(w, http.StatusOK, `[{"id":"b1","version":0,"data":{"id":"b1"}}]`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.ClientApp{})
	_, err := a.PullRecordsSince(context.Background(), models.Bookings, 0)

	assert.ErrorIs(t, err, ErrMalformedPayload)
}

// ── Auth ────────────────────────────────────────────────────────────────────

func TestOriginToken_AttachedAndReused(t *testing.T) {
	app := config.ClientApp{
		Origin:        "admin",
		TokenSignKey:  "secret",
		TokenIssuer:   "dcms-sync",
		TokenDuration: time.Hour,
	}

	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		require.NoError(t, err)
		seen = append(seen, raw)

		token, err := utils.ValidateAndParseJWTToken(raw, app.TokenSignKey, app.TokenIssuer)
		require.NoError(t, err)
		assert.Equal(t, "admin", token.Origin)

		jsonReply(w, http.StatusOK, `[]`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, app)
	_, err := a.PullCollection(context.Background(), models.Bookings)
	require.NoError(t, err)
	_, err = a.PullCollection(context.Background(), models.Customers)
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.Equal(t, seen[0], seen[1])
}

func TestHealth_NoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		jsonReply(w, http.StatusOK, `{"status":"ok"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.ClientApp{Origin: "admin", TokenSignKey: "k", TokenIssuer: "i", TokenDuration: time.Hour})
	_, err := a.Health(context.Background())
	require.NoError(t, err)
}

// ── Construction ────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:3002", want: "http://localhost:3002"},
		{in: " https://sync.example.com/ ", want: "https://sync.example.com"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapHTTPError(t *testing.T) {
	codes := map[int]error{
		http.StatusBadRequest:            ErrBadRequest,
		http.StatusUnauthorized:          ErrUnauthorized,
		http.StatusForbidden:             ErrForbidden,
		http.StatusNotFound:              ErrNotFound,
		http.StatusConflict:              ErrConflict,
		http.StatusRequestEntityTooLarge: ErrPayloadTooLarge,
		http.StatusInternalServerError:   ErrInternalServerError,
		http.StatusBadGateway:            ErrBadGateway,
		http.StatusServiceUnavailable:    ErrServiceUnavailable,
	}

	for code, want := range codes {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		}))

		a := newTestAdapter(t, srv.URL, config.ClientApp{})
		_, err := a.PullCollection(context.Background(), models.Bookings)
		assert.ErrorIs(t, err, want, "status %d", code)

		srv.Close()
	}
}
