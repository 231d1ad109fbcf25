// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingClass matches every [MissingClassError].
	ErrMissingClass = errors.New("entity class is missing")
	// ErrInvalidClass matches every [InvalidClassError].
	ErrInvalidClass = errors.New("entity class is not a string")
	// ErrInvalidName matches every [InvalidNameError].
	ErrInvalidName = errors.New("entity name is invalid")
	// ErrUnknownMergeMode is returned by [NewNormalizer] for an unsupported mode.
	ErrUnknownMergeMode = errors.New("unknown merge mode")
)

// MissingClassError is returned when a structured entity declaration does not
// define its class.
type MissingClassError struct {
	// Entity is the key the declaration was found under.
	Entity string
}

func (e *MissingClassError) Error() string {
	return fmt.Sprintf("The %q entity must define its associated class using the \"class\" option.", e.Entity)
}

// Is makes errors.Is(err, ErrMissingClass) hold.
func (e *MissingClassError) Is(target error) bool {
	return target == ErrMissingClass
}

// InvalidClassError is returned when the "class" option of a structured
// declaration is set to something other than a string, such as a number or a
// list.
type InvalidClassError struct {
	Entity string
	// Value is the decoded option value.
	Value any
}

func (e *InvalidClassError) Error() string {
	return fmt.Sprintf("The \"class\" option of the %q entity must be a class name, got %T (%v).", e.Entity, e.Value, e.Value)
}

// Is makes errors.Is(err, ErrInvalidClass) hold.
func (e *InvalidClassError) Is(target error) bool {
	return target == ErrInvalidClass
}

// InvalidNameError is returned when a resolved entity name is not a valid
// identifier.
type InvalidNameError struct {
	// Name is the offending resolved name, suffix included.
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("The name of the %q entity contains invalid characters "+
		"(allowed: letters, numbers, underscores; the first character cannot be a number).", e.Name)
}

// Is makes errors.Is(err, ErrInvalidName) hold.
func (e *InvalidNameError) Is(target error) bool {
	return target == ErrInvalidName
}

// fragmentError attributes a resolution failure to the fragment it came from.
func fragmentError(source string, err error) error {
	if source == "" {
		return err
	}
	return fmt.Errorf("fragment %q: %w", source, err)
}
