package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUnknownDriver is returned when the configured storage driver has no
	// implementation.
	ErrUnknownDriver = errors.New("unknown storage driver")

	// ErrVersionConflict is returned when an optimistic transaction keeps
	// losing to concurrent writers and the retry budget is exhausted.
	ErrVersionConflict = errors.New("collection version conflict occurred")

	// ErrCorruptedData is returned when a stored collection or sync state
	// cannot be decoded.
	ErrCorruptedData = errors.New("stored data is corrupted")

	// ErrStoreClosed is returned by in-memory stores after Close.
	ErrStoreClosed = errors.New("store is closed")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to executing statement")
	ErrScanningRow          = errors.New("failed to scan record row")
	ErrScanningRows         = errors.New("failed to scan record rows")
)
