// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"github.com/MKhiriev/go-admin-config/models"
)

// normalizeDeclaration turns either declaration syntax into the canonical
// record. The returned entity has no name yet.
func normalizeDeclaration(key models.EntityKey, decl models.Declaration) (models.EntityConfig, error) {
	if !decl.IsFullConfig() {
		if decl.Class() == "" {
			return models.EntityConfig{}, &MissingClassError{Entity: key.String()}
		}
		return models.EntityConfig{Class: decl.Class(), Options: map[string]any{}}, nil
	}

	options := decl.Options()
	raw, ok := options[models.OptionClass]
	if !ok || raw == nil {
		return models.EntityConfig{}, &MissingClassError{Entity: key.String()}
	}
	class, ok := raw.(string)
	if !ok {
		return models.EntityConfig{}, &InvalidClassError{Entity: key.String(), Value: raw}
	}
	if class == "" {
		return models.EntityConfig{}, &MissingClassError{Entity: key.String()}
	}

	entity := models.EntityConfig{
		Class:   class,
		Options: make(map[string]any, len(options)),
	}
	for k, v := range options {
		// the resolved name always replaces a user supplied one
		if k == models.OptionClass || k == models.OptionName {
			continue
		}
		entity.Options[k] = cloneValue(v)
	}

	return entity, nil
}

// candidateName is the name an entity asks for before collisions are
// resolved. Shorthand list entries never had a name and fall back to the
// short class name.
func candidateName(key models.EntityKey, entity models.EntityConfig) string {
	if key.IsIndex() {
		return ShortClassName(entity.Class)
	}
	return key.String()
}

// cloneValue deep-copies the map and slice containers of a decoded
// configuration value so that resolved output never aliases caller input.
func cloneValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		return cloneOptions(value)
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

func cloneOptions(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}
