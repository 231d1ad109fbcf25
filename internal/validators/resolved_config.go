package validators

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/MKhiriev/go-admin-config/internal/resolver"
	"github.com/MKhiriev/go-admin-config/models"
)

// Field name constants accepted by [ResolvedConfigValidator.Validate].
const (
	// FieldEntities checks every entity: non-empty class, identifier-safe
	// name, name equal to its key.
	FieldEntities = "entities"

	// FieldOrder checks that Order lists every entity name exactly once.
	FieldOrder = "order"
)

// ResolvedConfigValidator re-checks the invariants of a resolved admin
// configuration before it is handed out to consumers.
type ResolvedConfigValidator struct {
}

// NewResolvedConfigValidator constructs a new ResolvedConfigValidator
// and returns it as the Validator interface.
func NewResolvedConfigValidator() Validator {
	return &ResolvedConfigValidator{}
}

// Validate accepts models.ResolvedConfig, *models.ResolvedConfig,
// models.EntityConfig and *models.EntityConfig. Any other type yields
// ErrUnsupportedType.
func (v *ResolvedConfigValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ResolvedConfig:
		return v.validateResolvedConfig(ctx, &value, fields...)
	case *models.ResolvedConfig:
		if value == nil {
			return ErrNilConfig
		}
		return v.validateResolvedConfig(ctx, value, fields...)
	case models.EntityConfig:
		return v.validateEntity(value.Name, value)
	case *models.EntityConfig:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateEntity(value.Name, *value)
	default:
		return ErrUnsupportedType
	}
}

func (v *ResolvedConfigValidator) validateResolvedConfig(_ context.Context, cfg *models.ResolvedConfig, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntities, FieldOrder}
	}

	for _, f := range fields {
		switch f {
		case FieldEntities:
			for _, name := range slices.Sorted(maps.Keys(cfg.Entities)) {
				if err := v.validateEntity(name, cfg.Entities[name]); err != nil {
					return err
				}
			}
		case FieldOrder:
			if err := validateOrder(cfg); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ResolvedConfigValidator) validateEntity(key string, entity models.EntityConfig) error {
	if entity.Class == "" {
		return fmt.Errorf("entity %q: %w", key, ErrEmptyClass)
	}
	if !resolver.IsValidName(key) {
		return fmt.Errorf("entity %q: %w", key, ErrInvalidEntityName)
	}
	if entity.Name != key {
		return fmt.Errorf("entity %q is named %q: %w", key, entity.Name, ErrNameMismatch)
	}
	return nil
}

func validateOrder(cfg *models.ResolvedConfig) error {
	if len(cfg.Order) != len(cfg.Entities) {
		return fmt.Errorf("%w: %d names listed, %d entities", ErrOrderMismatch, len(cfg.Order), len(cfg.Entities))
	}

	seen := make(map[string]struct{}, len(cfg.Order))
	for _, name := range cfg.Order {
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %q listed twice", ErrOrderMismatch, name)
		}
		seen[name] = struct{}{}
		if _, ok := cfg.Entities[name]; !ok {
			return fmt.Errorf("%w: %q has no entity", ErrOrderMismatch, name)
		}
	}
	return nil
}
