// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHTTPHandler    = errors.New("no http handler to serve: server address is not configured")
	errServerNotStarted = errors.New("http server was not created")
)
