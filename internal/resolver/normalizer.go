// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"fmt"

	"github.com/MKhiriev/go-admin-config/models"
)

// MergeMode selects what happens when two fragments use the same entity name.
type MergeMode string

const (
	// ModeRename gives the later entity the next free numeric suffix.
	ModeRename MergeMode = "rename"
	// ModeMerge treats equal names in different fragments as one entity and
	// deep-merges their options. Names stay unique within a fragment.
	ModeMerge MergeMode = "merge"
)

// ParseMergeMode converts a configuration value into a [MergeMode].
// The empty string selects [ModeRename].
func ParseMergeMode(s string) (MergeMode, error) {
	switch MergeMode(s) {
	case "", ModeRename:
		return ModeRename, nil
	case ModeMerge:
		return ModeMerge, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMergeMode, s)
	}
}

// Normalizer resolves a sequence of fragments into one configuration.
type Normalizer struct {
	mode MergeMode
}

// NewNormalizer returns a Normalizer for the given merge mode.
func NewNormalizer(mode MergeMode) (*Normalizer, error) {
	if _, err := ParseMergeMode(string(mode)); err != nil {
		return nil, err
	}
	if mode == "" {
		mode = ModeRename
	}
	return &Normalizer{mode: mode}, nil
}

// Mode returns the merge mode the Normalizer was built with.
func (n *Normalizer) Mode() MergeMode {
	return n.mode
}

// Normalize resolves and merges fragments according to the merge mode.
func (n *Normalizer) Normalize(fragments []models.Fragment) (*models.ResolvedConfig, error) {
	resolve := Resolve
	if n.mode == ModeMerge {
		resolve = ResolveEach
	}

	resolved, err := resolve(fragments)
	if err != nil {
		return nil, err
	}

	return Merge(resolved)
}
