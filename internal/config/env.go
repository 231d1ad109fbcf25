// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables through the `env` and
// `envPrefix` tags of [StructuredConfig].
//
// BACKEND_CONFIG_PATHS is split on commas by the env library; blanks around
// each path are dropped, and so are empty entries.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	paths := cfg.Backend.ConfigPaths[:0]
	for _, path := range cfg.Backend.ConfigPaths {
		if path = strings.TrimSpace(path); path != "" {
			paths = append(paths, path)
		}
	}
	if len(paths) == 0 {
		paths = nil
	}
	cfg.Backend.ConfigPaths = paths

	return nil
}
