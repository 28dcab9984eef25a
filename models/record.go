// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotAnArray is returned by [DecodeRecords] for a payload that is not a
// JSON array, including a literal null.
var ErrNotAnArray = errors.New("payload is not a JSON array")

// Record is a single element of a collection: an opaque JSON object whose
// only interpreted field is the string "id".
//
// Raw holds the exact bytes received or written by the application.
// [EncodeRecords] copies them unchanged, so the sync server returns records
// verbatim. ID is extracted on decode; it is empty when the element is not
// an object or carries a non-string id, which validators reject.
type Record struct {
	ID  string
	Raw json.RawMessage
}

// NewRecord encodes v as JSON and wraps it as a Record. v must marshal to an
// object carrying a string "id".
func NewRecord(v any) (Record, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return Record{}, err
	}
	var r Record
	if err = r.UnmarshalJSON(raw); err != nil {
		return Record{}, err
	}
	return r, nil
}

// MustRecord is like [NewRecord] but panics on error. Intended for tests and
// static fixtures.
func MustRecord(v any) Record {
	r, err := NewRecord(v)
	if err != nil {
		panic(err)
	}
	return r
}

// MarshalJSON returns the raw bytes of the record.
func (r Record) MarshalJSON() ([]byte, error) {
	if len(r.Raw) == 0 {
		return json.Marshal(map[string]string{"id": r.ID})
	}
	return r.Raw, nil
}

// UnmarshalJSON keeps a private copy of b and extracts the id when b is an
// object with a string "id" field.
func (r *Record) UnmarshalJSON(b []byte) error {
	r.Raw = append(r.Raw[:0:0], b...)
	r.ID = ""

	if !r.IsObject() {
		return nil
	}

	var probe struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return err
	}

	var id string
	if len(probe.ID) > 0 && json.Unmarshal(probe.ID, &id) == nil {
		r.ID = id
	}
	return nil
}

// IsObject reports whether the raw payload is a JSON object.
func (r Record) IsObject() bool {
	trimmed := bytes.TrimLeft(r.Raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// Fields decodes the record into a generic map. Numbers are kept as
// [json.Number] so re-encoding does not lose precision.
func (r Record) Fields() (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(r.Raw))
	dec.UseNumber()

	fields := make(map[string]any)
	if err := dec.Decode(&fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// Canonical returns a normalized encoding of the record: object keys are
// sorted and insignificant whitespace is removed. Two records with equal
// canonical forms are structurally equal.
func (r Record) Canonical() ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(r.Raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// Equal reports structural equality of two records. Records that cannot be
// decoded fall back to a byte comparison.
func (r Record) Equal(other Record) bool {
	a, errA := r.Canonical()
	b, errB := other.Canonical()
	if errA != nil || errB != nil {
		return bytes.Equal(r.Raw, other.Raw)
	}
	return bytes.Equal(a, b)
}

// IDs returns the ids of records in order.
func IDs(records []Record) []string {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	return ids
}

// EncodeRecords writes records as a JSON array, copying each raw payload
// byte for byte. A nil slice encodes as [].
func EncodeRecords(records []Record) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, r := range records {
		if i > 0 {
			buf.WriteByte(',')
		}
		raw, err := r.MarshalJSON()
		if err != nil {
			return nil, err
		}
		if !json.Valid(raw) {
			return nil, fmt.Errorf("record %q holds invalid JSON", r.ID)
		}
		buf.Write(raw)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// DecodeRecords parses a JSON array of records. The caller is expected to
// validate the result.
func DecodeRecords(b []byte) ([]Record, error) {
	trimmed := bytes.TrimLeft(b, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotAnArray
	}

	var records []Record
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}
