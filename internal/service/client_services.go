package service

import (
	"errors"

	"github.com/MKhiriev/go-admin-config/internal/adapter"
)

var errNoServerAdapter = errors.New("no server adapter was given to the client services")

// ClientServices groups what adminctl needs to talk to a running server.
type ClientServices struct {
	ConfigService ClientConfigService
}

func NewClientServices(serverAdapter adapter.ServerAdapter) (*ClientServices, error) {
	if serverAdapter == nil {
		return nil, errNoServerAdapter
	}

	return &ClientServices{
		ConfigService: NewClientConfigService(serverAdapter),
	}, nil
}
