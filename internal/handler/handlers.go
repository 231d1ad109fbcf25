package handler

import (
	"github.com/MKhiriev/go-admin-config/internal/config"
	"github.com/MKhiriev/go-admin-config/internal/handler/http"
	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/internal/service"
)

// Handlers groups the transport handlers of the server. HTTP is the only
// transport.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers requires both services and an HTTP address; without them the
// server has nothing to serve.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	if services == nil || services.AppInfoService == nil || services.BackendConfigService == nil {
		return nil, errMissingServices
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}

	logger.Info().Str("address", cfg.HTTPAddress).Msg("creating http handler")

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.RequestTimeout, logger),
	}, nil
}
