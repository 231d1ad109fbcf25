package http

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const adminPrefix = "/admin/"

// Init builds the router. The admin configuration is resolved here so that
// one /admin/<name> route can be registered per entity.
func (h *Handler) Init(ctx context.Context) (*chi.Mux, error) {
	entities, err := h.services.BackendConfigService.Entities(ctx)
	if err != nil {
		return nil, fmt.Errorf("error resolving admin entities: %w", err)
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)
	router.Get("/api/entities", h.listEntities)
	router.Get("/api/entities/{entity}", h.getEntity)

	// one route per resolved entity
	for _, entity := range entities {
		router.Get(adminPrefix+entity.Name, h.describeEntity(entity))
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	h.logger.Info().Int("entities", len(entities)).Msg("http routes registered")

	return router, nil
}
