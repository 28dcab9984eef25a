package adapter

import "errors"

// Transport errors. Non-2xx replies are mapped by mapHTTPError; failures to
// reach the server at all wrap [ErrServerUnavailable].
var (
	ErrServerUnavailable = errors.New("sync server unavailable")
	ErrMalformedPayload  = errors.New("malformed payload")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)
