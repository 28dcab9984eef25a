package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrAuthDisabled            = errors.New("token sign key is not configured")

	ErrValidationNoChangesProvided = errors.New("no changes provided")
	ErrValidationInvalidCursor     = errors.New("since cursor must not be negative")
)

// Client engine errors. Push and pull failures are mapped onto these by
// mapAdapterError; the adapter error stays in the chain.
var (
	ErrServerUnreachable  = errors.New("sync server unreachable")
	ErrPayloadRejected    = errors.New("payload rejected by sync server")
	ErrOriginUnauthorized = errors.New("origin is not authorized")
	ErrUnknownCollection  = errors.New("collection unknown to sync server")
	ErrServerFailure      = errors.New("sync server failure")
	ErrMalformedReply     = errors.New("malformed reply from sync server")
	ErrWriteConflict      = errors.New("write conflict on sync server")

	ErrEngineStopped = errors.New("sync engine is stopped")
)
