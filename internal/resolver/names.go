// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"strconv"
	"strings"
)

// namespaceSeparator splits a fully-qualified class name into its segments.
const namespaceSeparator = `\`

// firstSuffix is the suffix tried first when a name is already taken.
const firstSuffix = 2

// nameRegistry is the ordered set of names assigned during one resolution
// pass. It is owned by a single call and never shared.
type nameRegistry struct {
	taken map[string]struct{}
	order []string
}

func newNameRegistry() *nameRegistry {
	return &nameRegistry{taken: make(map[string]struct{})}
}

func (r *nameRegistry) has(name string) bool {
	_, ok := r.taken[name]
	return ok
}

func (r *nameRegistry) add(name string) {
	if r.has(name) {
		return
	}
	r.taken[name] = struct{}{}
	r.order = append(r.order, name)
}

// unique returns candidate when free, otherwise the first free candidateN
// with N counting up from 2.
func (r *nameRegistry) unique(candidate string) string {
	name := candidate
	for i := firstSuffix; r.has(name); i++ {
		name = candidate + strconv.Itoa(i)
	}
	return name
}

// ShortClassName returns the last namespace segment of a fully-qualified
// class name: `App\Entity\User` becomes `User`.
func ShortClassName(class string) string {
	if i := strings.LastIndex(class, namespaceSeparator); i >= 0 {
		return class[i+len(namespaceSeparator):]
	}
	return class
}

// IsValidName reports whether name can key an entity: an optional leading
// hyphen, then a letter, underscore or byte >= 0x7f, then any number of
// letters, digits, underscores or bytes >= 0x7f.
//
// Bytes are inspected one by one, so every multi-byte UTF-8 sequence is
// accepted as extended characters.
func IsValidName(name string) bool {
	name = strings.TrimPrefix(name, "-")
	if name == "" {
		return false
	}
	if !isNameStart(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isNameStart(name[i]) && !isDigit(name[i]) {
			return false
		}
	}
	return true
}

func isNameStart(b byte) bool {
	return b == '_' || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || b >= 0x7f
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}
