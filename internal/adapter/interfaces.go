// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for querying a running
// admin configuration server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-admin-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the admin
// configuration server.
type ServerAdapter interface {
	// Version returns the application version reported by the server.
	Version(ctx context.Context) (string, error)

	// ListEntities returns every resolved entity in order of first
	// appearance.
	ListEntities(ctx context.Context) ([]models.EntityConfig, error)

	// GetEntity returns a single resolved entity. Returns [ErrNotFound]
	// (wrapped) when the server does not know the name.
	GetEntity(ctx context.Context, name string) (models.EntityConfig, error)
}
