// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// admin configuration server handlers and the adminctl client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// The client maps them back to service errors, so both sides must agree on
// the exact wording.
package app

const (
	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgEntityNotFound is returned when the requested entity name is not
	// part of the resolved configuration.
	MsgEntityNotFound = "entity not found"

	// MsgConfigUnavailable is returned when the admin configuration could not
	// be resolved, for example because a fragment declares an entity without
	// a class.
	MsgConfigUnavailable = "admin configuration is unavailable"

	// MsgVersionIsNotSpecified is returned when the server was started
	// without an application version.
	MsgVersionIsNotSpecified = "version is not specified"
)
