package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-admin-config/internal/app"
	"github.com/MKhiriev/go-admin-config/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrEntityNotFound:        http.StatusNotFound,
	service.ErrConfigUnavailable:     http.StatusServiceUnavailable,
	service.ErrInvalidConfig:         http.StatusServiceUnavailable,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,
}

var errorMessageMap = map[error]string{
	service.ErrEntityNotFound:        app.MsgEntityNotFound,
	service.ErrConfigUnavailable:     app.MsgConfigUnavailable,
	service.ErrInvalidConfig:         app.MsgConfigUnavailable,
	service.ErrVersionIsNotSpecified: app.MsgVersionIsNotSpecified,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}

// writeError answers with the status and message mapped from err. Internal
// details never reach the client.
func writeError(w http.ResponseWriter, err error) {
	http.Error(w, messageFromError(err), statusFromError(err))
}
