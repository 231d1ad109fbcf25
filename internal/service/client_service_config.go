package service

import (
	"context"

	"github.com/MKhiriev/go-admin-config/internal/adapter"
	"github.com/MKhiriev/go-admin-config/models"
)

type clientConfigService struct {
	serverAdapter adapter.ServerAdapter
}

func NewClientConfigService(serverAdapter adapter.ServerAdapter) ClientConfigService {
	return &clientConfigService{serverAdapter: serverAdapter}
}

func (s *clientConfigService) ServerVersion(ctx context.Context) (string, error) {
	version, err := s.serverAdapter.Version(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return version, nil
}

func (s *clientConfigService) Entities(ctx context.Context) ([]models.EntityConfig, error) {
	entities, err := s.serverAdapter.ListEntities(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return entities, nil
}

func (s *clientConfigService) Entity(ctx context.Context, name string) (models.EntityConfig, error) {
	entity, err := s.serverAdapter.GetEntity(ctx, name)
	if err != nil {
		return models.EntityConfig{}, mapAdapterError(err)
	}
	return entity, nil
}
