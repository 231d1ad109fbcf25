// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/fragment_loader_mock.go -package=mock

// Package fragments reads backend configuration fragments from files.
//
// Two file formats are understood, YAML (.yaml, .yml) and JSON (.json). In
// both, the entities may be written as a list of class names, as a mapping of
// names to class names, or as a mapping of names to option maps. The whole
// document may be wrapped under a single "easy_admin" root key.
package fragments

import (
	"context"

	"github.com/MKhiriev/go-admin-config/models"
)

// Loader reads configuration fragments, preserving the order of paths.
type Loader interface {
	Load(ctx context.Context, paths ...string) ([]models.Fragment, error)
}
