// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"github.com/MKhiriev/go-admin-config/models"
)

// Resolve normalizes and names the entities of every fragment, in order.
//
// Names are unique across all fragments: a name taken by an earlier entity,
// in the same or in a previous fragment, is suffixed with the first free
// number starting at 2 (User, User2, User3, ...). Fragments are not modified.
//
// Resolution is all or nothing: on error the returned slice is nil.
func Resolve(fragments []models.Fragment) ([]models.ResolvedFragment, error) {
	registry := newNameRegistry()

	resolved := make([]models.ResolvedFragment, 0, len(fragments))
	for _, fragment := range fragments {
		rf, err := resolveFragment(fragment, registry)
		if err != nil {
			return nil, fragmentError(fragment.Source, err)
		}
		resolved = append(resolved, rf)
	}

	return resolved, nil
}

// ResolveEach is [Resolve] with a separate name scope per fragment. Equal
// keys in different fragments keep equal names, so [Merge] combines them
// into one entity instead of renaming the later one.
func ResolveEach(fragments []models.Fragment) ([]models.ResolvedFragment, error) {
	resolved := make([]models.ResolvedFragment, 0, len(fragments))
	for _, fragment := range fragments {
		rf, err := resolveFragment(fragment, newNameRegistry())
		if err != nil {
			return nil, fragmentError(fragment.Source, err)
		}
		resolved = append(resolved, rf)
	}

	return resolved, nil
}

func resolveFragment(fragment models.Fragment, registry *nameRegistry) (models.ResolvedFragment, error) {
	rf := models.ResolvedFragment{
		Source:      fragment.Source,
		HasEntities: fragment.HasEntities,
		Options:     cloneOptions(fragment.Options),
	}
	if !fragment.HasEntities {
		return rf, nil
	}

	rf.Entities = make([]models.EntityConfig, 0, len(fragment.Entities))
	for _, entry := range fragment.Entities {
		entity, err := normalizeDeclaration(entry.Key, entry.Declaration)
		if err != nil {
			return models.ResolvedFragment{}, err
		}

		name := registry.unique(candidateName(entry.Key, entity))
		if !IsValidName(name) {
			return models.ResolvedFragment{}, &InvalidNameError{Name: name}
		}

		entity.Name = name
		registry.add(name)
		rf.Entities = append(rf.Entities, entity)
	}

	return rf, nil
}
