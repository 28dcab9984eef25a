package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUnknownCollection = errors.New("unknown collection")
	ErrRecordNotObject   = errors.New("record is not a JSON object")
	ErrInvalidRecordID   = errors.New("record id must be a non-empty string")
	ErrDuplicateRecordID = errors.New("duplicate record id")
	ErrEmptyChanges      = errors.New("changes list cannot be empty")
	ErrMissingData       = errors.New("upsert carries no record data")
	ErrRecordIDMismatch  = errors.New("record data id does not match change id")
	ErrInvalidVersion    = errors.New("invalid version")
)
