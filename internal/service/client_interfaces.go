//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/go-admin-config/models"
)

// ClientConfigService defines the client-side contract for inspecting the
// admin configuration served by a running server. Transport errors are
// translated back into the service errors the server started from.
type ClientConfigService interface {
	// ServerVersion returns the version the server reports.
	ServerVersion(ctx context.Context) (string, error)

	// Entities returns every resolved entity in order of first appearance.
	Entities(ctx context.Context) ([]models.EntityConfig, error)

	// Entity returns one resolved entity or ErrEntityNotFound.
	Entity(ctx context.Context, name string) (models.EntityConfig, error)
}
