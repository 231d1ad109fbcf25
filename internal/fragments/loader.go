// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fragments

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/models"
)

type parseFunc func(source string, data []byte) (models.Fragment, error)

var parsers = map[string]parseFunc{
	".yaml": ParseYAML,
	".yml":  ParseYAML,
	".json": ParseJSON,
}

// FileLoader loads fragments from the local file system, picking the parser
// from the file extension.
type FileLoader struct {
	logger *logger.Logger
}

// NewFileLoader returns a Loader backed by the file system.
func NewFileLoader(logger *logger.Logger) Loader {
	return &FileLoader{logger: logger.Component("fragments")}
}

// Load reads and parses every path in order. Every file is attempted; all
// failures are reported together and no fragment is returned in that case.
func (l *FileLoader) Load(ctx context.Context, paths ...string) ([]models.Fragment, error) {
	if len(paths) == 0 {
		return nil, ErrNoPaths
	}

	var errs error
	loaded := make([]models.Fragment, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fragment, err := loadFile(path)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		l.logger.Debug().
			Str("path", path).
			Bool("has_entities", fragment.HasEntities).
			Int("entities", len(fragment.Entities)).
			Msg("configuration fragment loaded")
		loaded = append(loaded, fragment)
	}

	if errs != nil {
		return nil, errs
	}

	return loaded, nil
}

func loadFile(path string) (models.Fragment, error) {
	parse, ok := parsers[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return models.Fragment{}, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.Fragment{}, fmt.Errorf("error reading configuration fragment: %w", err)
	}

	fragment, err := parse(path, data)
	if err != nil {
		return models.Fragment{}, fmt.Errorf("%s: %w", path, err)
	}

	return fragment, nil
}
