// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the sync
// server handlers and by the origin client when it interprets replies.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded at all.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgNotAnArray is returned when a replace body is valid JSON but not an
	// array of records.
	MsgNotAnArray = "body must be a JSON array of records"

	// MsgInvalidRecords is returned when a record is not an object, lacks a
	// string id, or repeats an id.
	MsgInvalidRecords = "invalid records"

	// MsgNoChangesProvided is returned when a record-level upsert carries an
	// empty change list.
	MsgNoChangesProvided = "no changes provided"

	// MsgInvalidCursor is returned when the since query parameter is not a
	// non-negative integer.
	MsgInvalidCursor = "invalid since cursor"

	// MsgUnknownCollection is returned for a resource outside the known
	// collection vocabulary.
	MsgUnknownCollection = "unknown collection"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgMissingToken is returned when authentication is enabled and the
	// request has no bearer token.
	MsgMissingToken = "missing bearer token"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is either
	// expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgVersionConflict is returned when concurrent writers kept colliding
	// on the same collection. The client should retry.
	MsgVersionConflict = "version conflict, please retry"

	// MsgMethodNotAllowed is returned by the method check middleware.
	MsgMethodNotAllowed = "method not allowed"
)
