package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-admin-config/internal/config"
	"github.com/MKhiriev/go-admin-config/internal/fragments"
	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/internal/resolver"
	"github.com/MKhiriev/go-admin-config/internal/validators"
	"github.com/MKhiriev/go-admin-config/models"
)

type backendConfigService struct {
	paths      []string
	loader     fragments.Loader
	normalizer *resolver.Normalizer
	validator  validators.Validator

	mu       sync.Mutex
	done     bool
	resolved *models.ResolvedConfig
	err      error

	logger *logger.Logger
}

// NewBackendConfigService returns a BackendConfigService reading the fragments
// listed in cfg.ConfigPaths through loader. Nothing is read until the first
// call to Resolve.
func NewBackendConfigService(cfg config.Backend, loader fragments.Loader, validator validators.Validator, logger *logger.Logger) (BackendConfigService, error) {
	mode, err := resolver.ParseMergeMode(cfg.MergeMode)
	if err != nil {
		return nil, err
	}

	normalizer, err := resolver.NewNormalizer(mode)
	if err != nil {
		return nil, err
	}

	return &backendConfigService{
		paths:      append([]string(nil), cfg.ConfigPaths...),
		loader:     loader,
		normalizer: normalizer,
		validator:  validator,
		logger:     logger.Component("backend_config"),
	}, nil
}

// Resolve resolves the configuration on the first call and returns the same
// result afterwards, errors included. A call that failed because its own
// context was cancelled or timed out is not remembered; the next call tries
// again.
func (s *backendConfigService) Resolve(ctx context.Context) (*models.ResolvedConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done {
		return s.resolved, s.err
	}

	resolved, err := s.resolve(ctx)
	if err != nil && isContextError(err) {
		return nil, err
	}

	s.resolved, s.err, s.done = resolved, err, true
	return resolved, err
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (s *backendConfigService) resolve(ctx context.Context) (*models.ResolvedConfig, error) {
	log := s.logger

	loaded, err := s.loader.Load(ctx, s.paths...)
	if err != nil {
		log.Err(err).Str("func", "*backendConfigService.resolve").Msg("error loading configuration fragments")
		return nil, fmt.Errorf("%w: %w", ErrConfigUnavailable, err)
	}

	resolved, err := s.normalizer.Normalize(loaded)
	if err != nil {
		log.Err(err).Str("func", "*backendConfigService.resolve").Msg("error resolving admin configuration")
		return nil, fmt.Errorf("%w: %w", ErrConfigUnavailable, err)
	}

	if err = s.validator.Validate(ctx, resolved); err != nil {
		log.Err(err).Str("func", "*backendConfigService.resolve").Msg("resolved admin configuration is invalid")
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	log.Info().
		Int("fragments", len(loaded)).
		Int("entities", resolved.Len()).
		Strs("names", resolved.Names()).
		Str("merge_mode", string(s.normalizer.Mode())).
		Msg("admin configuration resolved")

	return resolved, nil
}

func (s *backendConfigService) Entities(ctx context.Context) ([]models.EntityConfig, error) {
	resolved, err := s.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	return resolved.OrderedEntities(), nil
}

func (s *backendConfigService) Entity(ctx context.Context, name string) (models.EntityConfig, error) {
	resolved, err := s.Resolve(ctx)
	if err != nil {
		return models.EntityConfig{}, err
	}

	entity, ok := resolved.Entity(name)
	if !ok {
		return models.EntityConfig{}, fmt.Errorf("%w: %q", ErrEntityNotFound, name)
	}

	return entity, nil
}
