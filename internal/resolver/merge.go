// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"fmt"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-admin-config/models"
)

// Merge folds resolved fragments, in order, into one configuration.
//
// Entities sharing a resolved name are deep-merged option by option: scalars
// from later fragments win, nested maps are merged key by key and lists are
// replaced as a whole. Non-entity options are merged the same way. Inputs
// are left untouched.
func Merge(fragments []models.ResolvedFragment) (*models.ResolvedConfig, error) {
	cfg := &models.ResolvedConfig{
		Entities: make(map[string]models.EntityConfig),
		Options:  make(map[string]any),
	}
	merged := make(map[string]map[string]any)

	for _, fragment := range fragments {
		if err := mergeOptions(cfg.Options, fragment.Options); err != nil {
			return nil, fragmentError(fragment.Source, fmt.Errorf("error merging options: %w", err))
		}

		for _, entity := range fragment.Entities {
			src := cloneOptions(entity.AsMap())

			dst, ok := merged[entity.Name]
			if !ok {
				merged[entity.Name] = src
				cfg.Order = append(cfg.Order, entity.Name)
				continue
			}

			if err := mergeOptions(dst, src); err != nil {
				return nil, fragmentError(fragment.Source, fmt.Errorf("error merging entity %q: %w", entity.Name, err))
			}
		}
	}

	for name, m := range merged {
		entity := models.EntityConfigFromMap(m)
		entity.Name = name
		cfg.Entities[name] = entity
	}

	return cfg, nil
}

func mergeOptions(dst, src map[string]any) error {
	if len(src) == 0 {
		return nil
	}
	return mergo.Merge(&dst, cloneOptions(src), mergo.WithOverride)
}

// ResolveAndMerge runs [Resolve] followed by [Merge].
func ResolveAndMerge(fragments []models.Fragment) (*models.ResolvedConfig, error) {
	resolved, err := Resolve(fragments)
	if err != nil {
		return nil, err
	}
	return Merge(resolved)
}
