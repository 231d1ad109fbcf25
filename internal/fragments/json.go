// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fragments

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-admin-config/models"
)

var jsonNull = []byte("null")

// ParseJSON parses one JSON document into a fragment. source is only used to
// label the fragment.
//
// Entity objects are read token by token so their declaration order, which
// decides name collisions, survives decoding.
func ParseJSON(source string, data []byte) (models.Fragment, error) {
	fragment := models.Fragment{Source: source, Options: map[string]any{}}

	if err := checkJSONKeys(data); err != nil {
		return models.Fragment{}, err
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		return fragment, nil
	}

	root, err := decodeJSONObject(data)
	if err != nil {
		return models.Fragment{}, err
	}
	if inner, ok := root[rootKey]; ok && len(root) == 1 {
		if root, err = decodeJSONObject(inner); err != nil {
			return models.Fragment{}, err
		}
	}

	for key, raw := range root {
		if key == entitiesKey {
			entries, err := jsonEntities(raw)
			if err != nil {
				return models.Fragment{}, err
			}
			fragment.HasEntities = true
			fragment.Entities = entries
			continue
		}

		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return models.Fragment{}, fmt.Errorf("error decoding %q: %w", key, err)
		}
		fragment.Options[key] = v
	}

	return fragment, nil
}

// jsonObjectFrame is an open object or array while checkJSONKeys walks a
// document.
type jsonObjectFrame struct {
	object   bool
	entities bool
	name     string
	wantKey  bool
	keys     map[string]int
}

// checkJSONKeys fails on the first object key repeated within one object.
// encoding/json keeps the last value of a repeated key without saying so.
// Syntax errors are left to the decoding that follows.
func checkJSONKeys(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	var stack []*jsonObjectFrame

	valueDone := func() {
		if n := len(stack); n > 0 && stack[n-1].object {
			stack[n-1].wantKey = true
		}
	}

	name := ""
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil
		}

		if n := len(stack); n > 0 && stack[n-1].object && stack[n-1].wantKey {
			top := stack[n-1]
			if tok == json.Delim('}') {
				stack = stack[:n-1]
				valueDone()
				continue
			}

			key, _ := tok.(string)
			line := 1 + bytes.Count(data[:dec.InputOffset()], []byte("\n"))
			if first, ok := top.keys[key]; ok {
				sentinel := ErrDuplicateKey
				if top.entities {
					sentinel = ErrDuplicateEntity
				}
				return fmt.Errorf("%q (line %d, first defined on line %d): %w", key, line, first, sentinel)
			}
			top.keys[key] = line
			top.wantKey = false
			name = key
			continue
		}

		switch tok {
		case json.Delim('{'):
			frame := &jsonObjectFrame{object: true, wantKey: true, keys: map[string]int{}}
			if n := len(stack); n > 0 && stack[n-1].object {
				frame.name = name
				frame.entities = name == entitiesKey && isJSONFragmentRoot(stack)
			}
			stack = append(stack, frame)
		case json.Delim('['):
			stack = append(stack, &jsonObjectFrame{})
		case json.Delim(']'):
			stack = stack[:len(stack)-1]
			valueDone()
		default:
			valueDone()
		}
	}
}

// isJSONFragmentRoot reports whether the innermost open object is the
// document root or the object under a top level "easy_admin" key.
func isJSONFragmentRoot(stack []*jsonObjectFrame) bool {
	switch len(stack) {
	case 1:
		return stack[0].object
	case 2:
		return stack[0].object && stack[1].object && stack[1].name == rootKey
	default:
		return false
	}
}

func decodeJSONObject(data []byte) (map[string]json.RawMessage, error) {
	var object map[string]json.RawMessage
	if err := json.Unmarshal(data, &object); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, ErrInvalidFragment
		}
		return nil, fmt.Errorf("error decoding json fragment: %w", err)
	}
	return object, nil
}

func jsonEntities(raw json.RawMessage) ([]models.EntityEntry, error) {
	raw = bytes.TrimSpace(raw)

	switch {
	case bytes.Equal(raw, jsonNull):
		return nil, nil

	case bytes.HasPrefix(raw, []byte("[")):
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("error decoding entities: %w", err)
		}
		entries := make([]models.EntityEntry, 0, len(items))
		for i, item := range items {
			key := models.IndexKey(i)
			decl, err := jsonDeclaration(key, item)
			if err != nil {
				return nil, err
			}
			entries = append(entries, models.EntityEntry{Key: key, Declaration: decl})
		}
		return entries, nil

	case bytes.HasPrefix(raw, []byte("{")):
		return jsonEntityObject(raw)

	default:
		return nil, ErrInvalidEntities
	}
}

func jsonEntityObject(raw json.RawMessage) ([]models.EntityEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("error decoding entities: %w", err)
	}

	var entries []models.EntityEntry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("error decoding entities: %w", err)
		}
		name, _ := tok.(string)

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("error decoding entity %q: %w", name, err)
		}

		key := entityKey(name)
		decl, err := jsonDeclaration(key, value)
		if err != nil {
			return nil, err
		}
		entries = append(entries, models.EntityEntry{Key: key, Declaration: decl})
	}

	return entries, nil
}

func jsonDeclaration(key models.EntityKey, raw json.RawMessage) (models.Declaration, error) {
	raw = bytes.TrimSpace(raw)

	switch {
	case bytes.Equal(raw, jsonNull):
		return models.ClassOnly(""), nil

	case bytes.HasPrefix(raw, []byte(`"`)):
		var class string
		if err := json.Unmarshal(raw, &class); err != nil {
			return models.Declaration{}, fmt.Errorf("error decoding entity %q: %w", key, err)
		}
		return models.ClassOnly(class), nil

	case bytes.HasPrefix(raw, []byte("{")):
		options := map[string]any{}
		if err := json.Unmarshal(raw, &options); err != nil {
			return models.Declaration{}, fmt.Errorf("error decoding entity %q: %w", key, err)
		}
		return models.FullConfig(options), nil

	default:
		return models.Declaration{}, fmt.Errorf("entity %q: %w", key, ErrInvalidDeclaration)
	}
}
