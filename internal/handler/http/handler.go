package http

import (
	"time"

	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/internal/service"
)

// Handler serves the read-only admin configuration API.
type Handler struct {
	services *service.Services

	// zero disables the per-request timeout
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	h := &Handler{
		services:       services,
		requestTimeout: requestTimeout,
		logger:         logger.Component("http"),
	}
	h.logger.Debug().Dur("request_timeout", requestTimeout).Msg("http handler created")

	return h
}
