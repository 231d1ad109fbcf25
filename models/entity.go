// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"maps"
	"strconv"
)

// Reserved option names of an entity declaration. Every other option is
// carried through to the resolved [EntityConfig] untouched.
const (
	OptionClass = "class"
	OptionName  = "name"
)

// EntityKey is the key an entity was declared under inside a fragment.
//
// A key is either an index (the list shorthand, where the user never chose a
// name) or a user-supplied name (the mapping syntax).
type EntityKey struct {
	index int
	name  string
	named bool
}

// IndexKey returns the key of the i-th element of a shorthand entity list.
func IndexKey(i int) EntityKey {
	return EntityKey{index: i}
}

// NamedKey returns a key chosen by the user in the mapping syntax.
func NamedKey(name string) EntityKey {
	return EntityKey{name: name, named: true}
}

// IsIndex reports whether the key comes from the list shorthand.
func (k EntityKey) IsIndex() bool {
	return !k.named
}

// Index returns the list position of an index key.
func (k EntityKey) Index() int {
	return k.index
}

// String returns the key as the user wrote it.
func (k EntityKey) String() string {
	if k.named {
		return k.name
	}
	return strconv.Itoa(k.index)
}

// Declaration is the raw value an entity key points to: either a bare class
// name or a map of options that has to carry a "class" option.
type Declaration struct {
	class   string
	options map[string]any
	full    bool
}

// ClassOnly declares an entity by its fully-qualified class name alone.
func ClassOnly(class string) Declaration {
	return Declaration{class: class}
}

// FullConfig declares an entity through a map of options.
func FullConfig(options map[string]any) Declaration {
	return Declaration{options: options, full: true}
}

// IsFullConfig reports whether the declaration uses the options map syntax.
func (d Declaration) IsFullConfig() bool {
	return d.full
}

// Class returns the class of a [ClassOnly] declaration.
func (d Declaration) Class() string {
	return d.class
}

// Options returns the options of a [FullConfig] declaration.
func (d Declaration) Options() map[string]any {
	return d.options
}

// EntityEntry is one (key, declaration) pair in source order.
type EntityEntry struct {
	Key         EntityKey
	Declaration Declaration
}

// Fragment is one discrete unit of configuration, typically one file.
type Fragment struct {
	// Source names where the fragment came from. Used in error messages only.
	Source string

	// HasEntities reports whether the fragment declares an "entities" key,
	// even an empty one.
	HasEntities bool

	// Entities holds the entity declarations in the order they were written.
	Entities []EntityEntry

	// Options holds every top-level key other than "entities".
	Options map[string]any
}

// EntityConfig is the canonical form of an entity declaration.
type EntityConfig struct {
	// Class is the fully-qualified class backing the entity. Never empty.
	Class string

	// Name is the unique resolved name the entity is keyed by.
	Name string

	// Options holds every other user option.
	Options map[string]any
}

// AsMap flattens the entity into a single {class, name, ...options} map.
func (e EntityConfig) AsMap() map[string]any {
	m := make(map[string]any, len(e.Options)+2)
	maps.Copy(m, e.Options)
	m[OptionClass] = e.Class
	if e.Name != "" {
		m[OptionName] = e.Name
	}
	return m
}

// EntityConfigFromMap is the inverse of [EntityConfig.AsMap]. Non-string
// class or name values are ignored.
func EntityConfigFromMap(m map[string]any) EntityConfig {
	e := EntityConfig{Options: make(map[string]any, len(m))}
	for k, v := range m {
		switch k {
		case OptionClass:
			e.Class, _ = v.(string)
		case OptionName:
			e.Name, _ = v.(string)
		default:
			e.Options[k] = v
		}
	}
	return e
}

// MarshalJSON encodes the entity flat, the same shape it was declared in.
func (e EntityConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.AsMap())
}

// UnmarshalJSON decodes the flat shape written by [EntityConfig.MarshalJSON].
func (e *EntityConfig) UnmarshalJSON(b []byte) error {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	*e = EntityConfigFromMap(m)
	return nil
}

// MarshalYAML encodes the entity flat, the same shape it was declared in.
func (e EntityConfig) MarshalYAML() (any, error) {
	return e.AsMap(), nil
}

// ResolvedFragment is a fragment whose entities have been normalized and
// named. Entities keep the fragment's declaration order.
type ResolvedFragment struct {
	Source      string
	HasEntities bool
	Entities    []EntityConfig
	Options     map[string]any
}

// ResolvedConfig is the final, uniquely keyed backend configuration.
// It is built once and must not be mutated afterwards.
type ResolvedConfig struct {
	// Entities maps every resolved name to its entity.
	Entities map[string]EntityConfig `json:"entities" yaml:"entities"`

	// Order lists the entity names in order of first appearance.
	Order []string `json:"-" yaml:"-"`

	// Options holds the merged non-entity configuration keys.
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
}

// Len returns the number of resolved entities.
func (c *ResolvedConfig) Len() int {
	return len(c.Order)
}

// Names returns the entity names in order of first appearance.
func (c *ResolvedConfig) Names() []string {
	return append([]string(nil), c.Order...)
}

// Entity looks an entity up by its resolved name.
func (c *ResolvedConfig) Entity(name string) (EntityConfig, bool) {
	e, ok := c.Entities[name]
	return e, ok
}

// OrderedEntities returns the entities in order of first appearance.
func (c *ResolvedConfig) OrderedEntities() []EntityConfig {
	out := make([]EntityConfig, 0, len(c.Order))
	for _, name := range c.Order {
		out = append(out, c.Entities[name])
	}
	return out
}
