// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fragments

import (
	"fmt"

	yaml "gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-admin-config/models"
)

const yamlNullTag = "!!null"

// ParseYAML parses one YAML document into a fragment. source is only used to
// label the fragment.
//
// The document is walked at the node level so that a list of entities can be
// told apart from a mapping of entities without losing declaration order.
func ParseYAML(source string, data []byte) (models.Fragment, error) {
	fragment := models.Fragment{Source: source, Options: map[string]any{}}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return models.Fragment{}, fmt.Errorf("error decoding yaml fragment: %w", err)
	}
	if len(doc.Content) == 0 {
		return fragment, nil
	}

	root := deref(doc.Content[0])
	if isYAMLNull(root) {
		return fragment, nil
	}
	if root.Kind != yaml.MappingNode {
		return models.Fragment{}, fmt.Errorf("%w (line %d)", ErrInvalidFragment, root.Line)
	}
	if err := checkYAMLKeys(root, ErrDuplicateKey); err != nil {
		return models.Fragment{}, err
	}
	root, err := unwrapYAMLRoot(root)
	if err != nil {
		return models.Fragment{}, err
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i].Value, deref(root.Content[i+1])

		if key == entitiesKey {
			entries, err := yamlEntities(value)
			if err != nil {
				return models.Fragment{}, err
			}
			fragment.HasEntities = true
			fragment.Entities = entries
			continue
		}

		var v any
		if err := value.Decode(&v); err != nil {
			return models.Fragment{}, fmt.Errorf("error decoding %q: %w", key, err)
		}
		fragment.Options[key] = normalizeValue(v)
	}

	return fragment, nil
}

// unwrapYAMLRoot strips the optional single "easy_admin" root key, which
// must hold a mapping.
func unwrapYAMLRoot(root *yaml.Node) (*yaml.Node, error) {
	if len(root.Content) != 2 || root.Content[0].Value != rootKey {
		return root, nil
	}

	inner := deref(root.Content[1])
	switch {
	case isYAMLNull(inner):
		return &yaml.Node{Kind: yaml.MappingNode}, nil
	case inner.Kind != yaml.MappingNode:
		return nil, fmt.Errorf("%q: %w (line %d)", rootKey, ErrInvalidFragment, inner.Line)
	}

	if err := checkYAMLKeys(inner, ErrDuplicateKey); err != nil {
		return nil, err
	}
	return inner, nil
}

// checkYAMLKeys fails on the first key of mapping that was already seen.
// Decoding into a map runs the same check, walking nodes does not.
func checkYAMLKeys(mapping *yaml.Node, sentinel error) error {
	seen := make(map[string]int, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i]
		if first, ok := seen[key.Value]; ok {
			return fmt.Errorf("%q (line %d, first defined on line %d): %w", key.Value, key.Line, first, sentinel)
		}
		seen[key.Value] = key.Line
	}
	return nil
}

func yamlEntities(node *yaml.Node) ([]models.EntityEntry, error) {
	switch {
	case isYAMLNull(node):
		return nil, nil

	case node.Kind == yaml.SequenceNode:
		entries := make([]models.EntityEntry, 0, len(node.Content))
		for i, item := range node.Content {
			key := models.IndexKey(i)
			decl, err := yamlDeclaration(key, item)
			if err != nil {
				return nil, err
			}
			entries = append(entries, models.EntityEntry{Key: key, Declaration: decl})
		}
		return entries, nil

	case node.Kind == yaml.MappingNode:
		if err := checkYAMLKeys(node, ErrDuplicateEntity); err != nil {
			return nil, err
		}
		entries := make([]models.EntityEntry, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := entityKey(node.Content[i].Value)
			decl, err := yamlDeclaration(key, node.Content[i+1])
			if err != nil {
				return nil, err
			}
			entries = append(entries, models.EntityEntry{Key: key, Declaration: decl})
		}
		return entries, nil

	default:
		return nil, fmt.Errorf("%w (line %d)", ErrInvalidEntities, node.Line)
	}
}

func yamlDeclaration(key models.EntityKey, node *yaml.Node) (models.Declaration, error) {
	node = deref(node)

	switch node.Kind {
	case yaml.ScalarNode:
		// a null value has no class and is reported by the resolver
		if node.Tag == yamlNullTag {
			return models.ClassOnly(""), nil
		}
		return models.ClassOnly(node.Value), nil

	case yaml.MappingNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return models.Declaration{}, fmt.Errorf("error decoding entity %q: %w", key, err)
		}
		options, _ := normalizeValue(v).(map[string]any)
		if options == nil {
			options = map[string]any{}
		}
		return models.FullConfig(options), nil

	default:
		return models.Declaration{}, fmt.Errorf("entity %q (line %d): %w", key, node.Line, ErrInvalidDeclaration)
	}
}

func deref(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func isYAMLNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Tag == yamlNullTag
}

// normalizeValue converts the map[any]any values yaml produces for
// non-string keys into map[string]any, recursively.
func normalizeValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		for k, item := range value {
			value[k] = normalizeValue(item)
		}
		return value
	case map[any]any:
		out := make(map[string]any, len(value))
		for k, item := range value {
			out[fmt.Sprint(k)] = normalizeValue(item)
		}
		return out
	case []any:
		for i, item := range value {
			value[i] = normalizeValue(item)
		}
		return value
	default:
		return v
	}
}
