package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/dcms-sync/internal/app"
	"github.com/MKhiriev/dcms-sync/internal/service"
	"github.com/MKhiriev/dcms-sync/internal/store"
	"github.com/MKhiriev/dcms-sync/internal/validators"
)

type errorStatus struct {
	target  error
	code    codes.Code
	message string
}

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []errorStatus{
	{validators.ErrUnknownCollection, codes.NotFound, app.MsgUnknownCollection},

	{validators.ErrRecordNotObject, codes.InvalidArgument, app.MsgInvalidRecords},
	{validators.ErrInvalidRecordID, codes.InvalidArgument, app.MsgInvalidRecords},
	{validators.ErrDuplicateRecordID, codes.InvalidArgument, app.MsgInvalidRecords},
	{validators.ErrMissingData, codes.InvalidArgument, app.MsgInvalidRecords},
	{validators.ErrRecordIDMismatch, codes.InvalidArgument, app.MsgInvalidRecords},
	{validators.ErrEmptyChanges, codes.InvalidArgument, app.MsgNoChangesProvided},
	{service.ErrValidationNoChangesProvided, codes.InvalidArgument, app.MsgNoChangesProvided},
	{service.ErrValidationInvalidCursor, codes.InvalidArgument, app.MsgInvalidCursor},
	{service.ErrInvalidDataProvided, codes.InvalidArgument, app.MsgInvalidDataProvided},

	{service.ErrTokenIsExpiredOrInvalid, codes.Unauthenticated, app.MsgTokenIsExpiredOrInvalid},

	{store.ErrVersionConflict, codes.Aborted, app.MsgVersionConflict},
}

// statusFromError converts a service error into a gRPC status error.
// Unlisted errors become codes.Internal without their details.
func statusFromError(err error) error {
	for _, s := range errorStatuses {
		if errors.Is(err, s.target) {
			return status.Error(s.code, s.message)
		}
	}
	return status.Error(codes.Internal, app.MsgInternalServerError)
}
