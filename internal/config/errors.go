// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a non-positive request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidBackendConfigs indicates invalid backend settings
	// (for example, no fragment paths or an unknown merge mode).
	ErrInvalidBackendConfigs = errors.New("invalid backend configuration")

	// ErrInvalidNetAddress is returned by the -a flag for anything that is
	// not host:port with a port in 1..65535.
	ErrInvalidNetAddress = errors.New("need address in a form `host:port`")
)
