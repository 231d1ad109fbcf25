// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"strings"
)

var mergeModes = []string{"rename", "merge"}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if len(cfg.Backend.ConfigPaths) == 0 {
		return fmt.Errorf("%w: at least one configuration path is required", ErrInvalidBackendConfigs)
	}
	for _, path := range cfg.Backend.ConfigPaths {
		if strings.TrimSpace(path) == "" {
			return fmt.Errorf("%w: empty configuration path", ErrInvalidBackendConfigs)
		}
	}
	if !slices.Contains(mergeModes, cfg.Backend.MergeMode) {
		return fmt.Errorf("%w: unknown merge mode %q", ErrInvalidBackendConfigs, cfg.Backend.MergeMode)
	}

	return nil
}
