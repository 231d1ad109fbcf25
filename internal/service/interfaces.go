package service

import (
	"context"

	"github.com/MKhiriev/go-admin-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AppInfoService reports static facts about the running application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// BackendConfigService hands out the resolved admin backend configuration.
// The configuration is resolved once; every later call observes the same
// result, including the same error, unless the failure came from the
// caller's context.
type BackendConfigService interface {
	// Resolve loads every configured fragment, resolves entity names and
	// merges the fragments. The result must not be mutated by callers.
	Resolve(ctx context.Context) (*models.ResolvedConfig, error)

	// Entities returns the resolved entities in order of first appearance.
	Entities(ctx context.Context) ([]models.EntityConfig, error)

	// Entity returns a single entity by its resolved name, or
	// ErrEntityNotFound.
	Entity(ctx context.Context, name string) (models.EntityConfig, error)
}
