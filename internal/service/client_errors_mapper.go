// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-admin-config/internal/adapter"
	"github.com/MKhiriev/go-admin-config/internal/app"
)

// serverMessages maps the messages the server writes for service errors back
// to those errors. Only the pairing of transport error and message is
// trusted; a 404 with any other body is a missing route, not a missing
// entity.
var serverMessages = []struct {
	transport error
	message   string
	err       error
}{
	{adapter.ErrBadRequest, app.MsgVersionIsNotSpecified, ErrVersionIsNotSpecified},
	{adapter.ErrNotFound, app.MsgEntityNotFound, ErrEntityNotFound},
	{adapter.ErrServiceUnavailable, app.MsgConfigUnavailable, ErrConfigUnavailable},
}

// mapAdapterError translates the adapter's transport error into the service
// error the server started from. Unknown errors are returned unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)
	for _, m := range serverMessages {
		if errors.Is(err, m.transport) && msg == m.message {
			return m.err
		}
	}

	// any 503 means the configuration could not be served
	if errors.Is(err, adapter.ErrServiceUnavailable) {
		return ErrConfigUnavailable
	}

	return err
}

// extractBody returns the response body part of "<transport error>: <body>".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
