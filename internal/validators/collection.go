package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/dcms-sync/models"
)

// Field name constants used to restrict validation to a subset of rules.
const (
	// FieldCollection checks that a collection name is in the known vocabulary.
	FieldCollection = "collection"

	// FieldRecordObject checks that every record is a JSON object.
	FieldRecordObject = "record_object"

	// FieldRecordID checks that every record carries a non-empty string id.
	FieldRecordID = "record_id"

	// FieldUniqueIDs checks that ids are unique within the payload.
	FieldUniqueIDs = "unique_ids"

	// FieldChanges checks a non-empty change set whose upserts carry data.
	FieldChanges = "changes"

	// FieldVersion checks server versions are positive.
	FieldVersion = "version"
)

// CollectionValidator implements [Validator] for payloads crossing the sync
// boundary: collection names, record arrays, record-level change sets and
// versioned records pulled from the server.
type CollectionValidator struct{}

// NewCollectionValidator constructs a CollectionValidator.
func NewCollectionValidator() Validator {
	return &CollectionValidator{}
}

func (v *CollectionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Collection:
		return v.validateCollection(value)
	case []models.Record:
		return v.validateRecords(value, fields...)
	case []models.RecordChange:
		return v.validateChanges(value, fields...)
	case []models.VersionedRecord:
		return v.validateVersioned(value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CollectionValidator) validateCollection(c models.Collection) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCollection, c)
	}
	return nil
}

func (v *CollectionValidator) validateRecords(records []models.Record, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecordObject, FieldRecordID, FieldUniqueIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldRecordObject:
			for i, r := range records {
				if !r.IsObject() {
					return fmt.Errorf("validation error at index %d: %w", i, ErrRecordNotObject)
				}
			}
		case FieldRecordID:
			for i, r := range records {
				if r.ID == "" {
					return fmt.Errorf("validation error at index %d: %w", i, ErrInvalidRecordID)
				}
			}
		case FieldUniqueIDs:
			seen := make(map[string]struct{}, len(records))
			for i, r := range records {
				if _, dup := seen[r.ID]; dup {
					return fmt.Errorf("validation error at index %d: %w %q", i, ErrDuplicateRecordID, r.ID)
				}
				seen[r.ID] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CollectionValidator) validateChanges(changes []models.RecordChange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldChanges, FieldRecordID, FieldUniqueIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldChanges:
			if len(changes) == 0 {
				return ErrEmptyChanges
			}
			for i, c := range changes {
				if c.Deleted {
					continue
				}
				if len(c.Data) == 0 {
					return fmt.Errorf("validation error at index %d: %w", i, ErrMissingData)
				}
				var r models.Record
				if err := r.UnmarshalJSON(c.Data); err != nil || !r.IsObject() {
					return fmt.Errorf("validation error at index %d: %w", i, ErrRecordNotObject)
				}
				if r.ID != c.ID {
					return fmt.Errorf("validation error at index %d: %w", i, ErrRecordIDMismatch)
				}
			}
		case FieldRecordID:
			for i, c := range changes {
				if c.ID == "" {
					return fmt.Errorf("validation error at index %d: %w", i, ErrInvalidRecordID)
				}
			}
		case FieldUniqueIDs:
			seen := make(map[string]struct{}, len(changes))
			for i, c := range changes {
				if _, dup := seen[c.ID]; dup {
					return fmt.Errorf("validation error at index %d: %w %q", i, ErrDuplicateRecordID, c.ID)
				}
				seen[c.ID] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CollectionValidator) validateVersioned(records []models.VersionedRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecordID, FieldVersion, FieldRecordObject}
	}

	for _, f := range fields {
		switch f {
		case FieldRecordID:
			for i, r := range records {
				if r.ID == "" {
					return fmt.Errorf("validation error at index %d: %w", i, ErrInvalidRecordID)
				}
			}
		case FieldVersion:
			for i, r := range records {
				if r.Version <= 0 {
					return fmt.Errorf("validation error at index %d: %w", i, ErrInvalidVersion)
				}
			}
		case FieldRecordObject:
			for i, r := range records {
				if r.Deleted {
					continue
				}
				if !r.Record().IsObject() {
					return fmt.Errorf("validation error at index %d: %w", i, ErrRecordNotObject)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
