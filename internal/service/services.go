package service

import (
	"github.com/MKhiriev/go-admin-config/internal/config"
	"github.com/MKhiriev/go-admin-config/internal/fragments"
	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/internal/validators"
)

type Services struct {
	AppInfoService       AppInfoService
	BackendConfigService BackendConfigService
}

func NewServices(loader fragments.Loader, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	backendConfigService, err := NewBackendConfigService(cfg.Backend, loader, validators.NewResolvedConfigValidator(), logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AppInfoService:       appInfoService,
		BackendConfigService: backendConfigService,
	}, nil
}
