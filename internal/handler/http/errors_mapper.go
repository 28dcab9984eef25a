package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/dcms-sync/internal/app"
	"github.com/MKhiriev/dcms-sync/internal/service"
	"github.com/MKhiriev/dcms-sync/internal/store"
	"github.com/MKhiriev/dcms-sync/internal/validators"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []errorResponse{
	{validators.ErrUnknownCollection, http.StatusNotFound, app.MsgUnknownCollection},

	{validators.ErrRecordNotObject, http.StatusBadRequest, app.MsgInvalidRecords},
	{validators.ErrInvalidRecordID, http.StatusBadRequest, app.MsgInvalidRecords},
	{validators.ErrDuplicateRecordID, http.StatusBadRequest, app.MsgInvalidRecords},
	{validators.ErrMissingData, http.StatusBadRequest, app.MsgInvalidRecords},
	{validators.ErrRecordIDMismatch, http.StatusBadRequest, app.MsgInvalidRecords},
	{validators.ErrEmptyChanges, http.StatusBadRequest, app.MsgNoChangesProvided},
	{service.ErrValidationNoChangesProvided, http.StatusBadRequest, app.MsgNoChangesProvided},
	{service.ErrValidationInvalidCursor, http.StatusBadRequest, app.MsgInvalidCursor},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{store.ErrVersionConflict, http.StatusConflict, app.MsgVersionConflict},
}

// responseFromError returns the status and body text for err. Anything not
// listed is an internal error; store details never reach the client.
func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
