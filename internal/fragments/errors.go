// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fragments

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned for files whose extension maps to no parser.
	ErrUnsupportedFormat = errors.New("unsupported configuration format")
	// ErrInvalidFragment is returned when a document is not a mapping at its root.
	ErrInvalidFragment = errors.New("configuration fragment must be a mapping")
	// ErrInvalidEntities is returned when "entities" is neither a list nor a mapping.
	ErrInvalidEntities = errors.New(`"entities" must be a list or a mapping`)
	// ErrInvalidDeclaration is returned for an entity value that is neither a
	// class name nor an options mapping.
	ErrInvalidDeclaration = errors.New("entity must be declared by a class name or an options mapping")
	// ErrDuplicateKey is returned when a mapping of a fragment repeats a key.
	ErrDuplicateKey = errors.New("mapping key already defined")
	// ErrDuplicateEntity is returned when the entities mapping repeats a name.
	// It matches ErrDuplicateKey too.
	ErrDuplicateEntity = fmt.Errorf("entity is declared more than once: %w", ErrDuplicateKey)
	// ErrNoPaths is returned when Load is called without any path.
	ErrNoPaths = errors.New("no configuration paths provided")
)
