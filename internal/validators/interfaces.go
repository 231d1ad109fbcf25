// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators re-checks values before they leave the service layer.
//
// The resolver already rejects bad declarations while it works. The
// validators here look at the finished [models.ResolvedConfig] as a whole
// (every key safe, every class present, order and map in agreement) so a
// broken configuration is never handed to the HTTP layer or the CLI.
package validators

import "context"

// Validator checks a value, optionally limited to the named fields.
// An empty field list means every field.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
