// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fragments

import (
	"strconv"

	"github.com/MKhiriev/go-admin-config/models"
)

const (
	rootKey     = "easy_admin"
	entitiesKey = "entities"
)

// entityKey maps a mapping key to an index key when it is a canonical
// non-negative integer ("0", "12" but not "012" or "-1"), and to a named key
// otherwise. Integer keys carry no user chosen name.
func entityKey(s string) models.EntityKey {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return models.NamedKey(s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return models.NamedKey(s)
		}
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return models.NamedKey(s)
	}
	return models.IndexKey(i)
}
