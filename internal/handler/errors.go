// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// Both are startup misconfigurations; the server refuses to start.
var (
	errMissingServices = errors.New("handlers need the app info and backend config services")
	errNoHTTPAddress   = errors.New("no http address configured")
)
