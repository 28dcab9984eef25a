package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/dcms-sync/internal/app"
	"github.com/MKhiriev/dcms-sync/internal/logger"
	"github.com/MKhiriev/dcms-sync/internal/utils"
	"github.com/MKhiriev/dcms-sync/models"
)

type collectionCtxKey struct{}

// withResource resolves the {resource} URL parameter. Unknown names are
// answered with 404 before any handler runs.
func (h *Handler) withResource(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := models.Collection(chi.URLParam(r, "resource"))
		if !c.Valid() {
			logger.FromRequest(r).Warn().Str("resource", c.String()).Msg("unknown collection requested")
			http.Error(w, app.MsgUnknownCollection, http.StatusNotFound)
			return
		}

		ctx := context.WithValue(r.Context(), collectionCtxKey{}, c)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func collectionFromRequest(r *http.Request) models.Collection {
	c, _ := r.Context().Value(collectionCtxKey{}).(models.Collection)
	return c
}

func (h *Handler) getCollection(w http.ResponseWriter, r *http.Request) {
	c := collectionFromRequest(r)

	records, err := h.services.SyncService.GetCollection(r.Context(), c)
	if err != nil {
		h.writeServiceError(w, r, err, "*Handler.getCollection")
		return
	}

	body, err := models.EncodeRecords(records)
	if err != nil {
		h.writeServiceError(w, r, err, "*Handler.getCollection")
		return
	}

	utils.WriteRawJSON(w, body, http.StatusOK)
}

func (h *Handler) replaceCollection(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	c := collectionFromRequest(r)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		log.Err(err).Str("func", "*Handler.replaceCollection").Msg("reading body failed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	var raw []json.RawMessage
	if err = json.Unmarshal(body, &raw); err != nil || raw == nil {
		log.Warn().Err(err).Str("func", "*Handler.replaceCollection").Str("collection", c.String()).Msg("body is not a JSON array")
		http.Error(w, app.MsgNotAnArray, http.StatusBadRequest)
		return
	}

	records, err := models.DecodeRecords(body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.replaceCollection").Msg("decoding records failed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	resp, err := h.services.SyncService.ReplaceCollection(r.Context(), c, records)
	if err != nil {
		h.writeServiceError(w, r, err, "*Handler.replaceCollection")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) lastUpdate(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.SyncService.LastUpdate(r.Context(), collectionFromRequest(r))
	if err != nil {
		h.writeServiceError(w, r, err, "*Handler.lastUpdate")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// getAll serves every known collection as one object keyed by name.
func (h *Handler) getAll(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.services.SyncService.GetAll(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, "*Handler.getAll")
		return
	}

	body := make(map[models.Collection]json.RawMessage, len(models.KnownCollections))
	for _, c := range models.KnownCollections {
		encoded, err := models.EncodeRecords(snapshot[c])
		if err != nil {
			h.writeServiceError(w, r, err, "*Handler.getAll")
			return
		}
		body[c] = encoded
	}

	utils.WriteJSON(w, body, http.StatusOK)
}

func (h *Handler) getRecordsSince(w http.ResponseWriter, r *http.Request) {
	var since int64
	if raw := r.URL.Query().Get("since"); raw != "" {
		var err error
		since, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || since < 0 {
			logger.FromRequest(r).Warn().Str("since", raw).Msg("invalid since cursor")
			http.Error(w, app.MsgInvalidCursor, http.StatusBadRequest)
			return
		}
	}

	records, err := h.services.SyncService.GetRecordsSince(r.Context(), collectionFromRequest(r), since)
	if err != nil {
		h.writeServiceError(w, r, err, "*Handler.getRecordsSince")
		return
	}
	if records == nil {
		records = []models.VersionedRecord{}
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) upsertRecords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var changes []models.RecordChange
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&changes); err != nil {
		log.Err(err).Str("func", "*Handler.upsertRecords").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	results, err := h.services.SyncService.UpsertRecords(r.Context(), collectionFromRequest(r), changes)
	if err != nil {
		h.writeServiceError(w, r, err, "*Handler.upsertRecords")
		return
	}

	utils.WriteJSON(w, results, http.StatusOK)
}

// writeServiceError answers with the status and message mapped from err.
// Client errors are logged at Warn, server errors at Error.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	status, msg := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	}

	http.Error(w, msg, status)
}
