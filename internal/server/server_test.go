package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-admin-config/internal/config"
	"github.com/MKhiriev/go-admin-config/internal/handler"
	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/internal/mock"
	"github.com/MKhiriev/go-admin-config/internal/service"
	"github.com/MKhiriev/go-admin-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHandlers(t *testing.T, cfg config.Server, entities []models.EntityConfig, err error) *handler.Handlers {
	t.Helper()
	ctrl := gomock.NewController(t)

	backend := mock.NewMockBackendConfigService(ctrl)
	backend.EXPECT().Entities(gomock.Any()).Return(entities, err).AnyTimes()
	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("test-version").AnyTimes()

	handlers, hErr := handler.NewHandlers(&service.Services{
		AppInfoService:       appInfo,
		BackendConfigService: backend,
	}, cfg, logger.Nop())
	require.NoError(t, hErr)

	return handlers
}

// freeAddress returns a localhost address nothing listens on yet.
func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(context.Background(), nil, config.Server{HTTPAddress: "localhost:8080"}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoHTTPHandler)
}

func TestNewServer_ResolveFailure(t *testing.T) {
	cfg := config.Server{HTTPAddress: "localhost:8080", RequestTimeout: time.Second}
	handlers := newTestHandlers(t, cfg, nil, service.ErrConfigUnavailable)

	s, err := NewServer(context.Background(), handlers, cfg, logger.Nop())

	assert.Nil(t, s)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrConfigUnavailable)
}

func TestNewServer_ServesAndShutsDown(t *testing.T) {
	cfg := config.Server{HTTPAddress: freeAddress(t), RequestTimeout: time.Second}
	handlers := newTestHandlers(t, cfg, []models.EntityConfig{{Class: `App\User`, Name: "User"}}, nil)

	s, err := NewServer(context.Background(), handlers, cfg, logger.Nop())
	require.NoError(t, err)

	srv := s.(*server)
	done := make(chan struct{})
	go func() {
		srv.httpServer.RunServer()
		close(done)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.HTTPAddress + "/admin/User")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	s.Shutdown()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after Shutdown")
	}
}
