package http

import (
	"net/http"

	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/internal/utils"
	"github.com/MKhiriev/go-admin-config/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listEntities(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	entities, err := h.services.BackendConfigService.Entities(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listEntities").Msg("error listing entities")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.EntityListResponse{Entities: entities, Length: len(entities)}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listEntities").Msg("error writing response")
	}
}

func (h *Handler) getEntity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := chi.URLParam(r, "entity")

	entity, err := h.services.BackendConfigService.Entity(r.Context(), name)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getEntity").Str("entity", name).Msg("error getting entity")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, entity, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getEntity").Msg("error writing response")
	}
}

// describeEntity serves the admin route of a single entity. The entity is
// captured at registration time; the configuration never changes afterwards.
func (h *Handler) describeEntity(entity models.EntityConfig) http.HandlerFunc {
	route := models.AdminRoute{
		Path:   adminPrefix + entity.Name,
		API:    "/api/entities/" + entity.Name,
		Entity: entity,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := utils.WriteJSON(w, route, http.StatusOK); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.describeEntity").Msg("error writing response")
		}
	}
}
