package handler

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-admin-config/internal/config"
	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/internal/mock"
	"github.com/MKhiriev/go-admin-config/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestServices(t *testing.T) *service.Services {
	t.Helper()
	ctrl := gomock.NewController(t)

	return &service.Services{
		AppInfoService:       mock.NewMockAppInfoService(ctrl),
		BackendConfigService: mock.NewMockBackendConfigService(ctrl),
	}
}

func TestNewHandlers_HTTP(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:    "localhost:8080",
		RequestTimeout: time.Second,
	}

	h, err := NewHandlers(newTestServices(t), cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(t), config.Server{}, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHTTPAddress)
}

func TestNewHandlers_MissingServices(t *testing.T) {
	cfg := config.Server{HTTPAddress: "localhost:8080"}

	for name, services := range map[string]*service.Services{
		"nil":        nil,
		"empty":      {},
		"no backend": {AppInfoService: mock.NewMockAppInfoService(gomock.NewController(t))},
	} {
		t.Run(name, func(t *testing.T) {
			h, err := NewHandlers(services, cfg, logger.Nop())

			assert.Nil(t, h)
			assert.ErrorIs(t, err, errMissingServices)
		})
	}
}
