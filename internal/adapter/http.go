package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-admin-config/internal/config"
	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/internal/utils"
	"github.com/MKhiriev/go-admin-config/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient("adminctl")
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger.Component("adapter")}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Version implements [ServerAdapter]. It GETs /api/version, which answers
// with the bare version string.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

// ListEntities implements [ServerAdapter]. It GETs /api/entities and decodes
// the [models.EntityListResponse] body.
func (h *httpServerAdapter) ListEntities(ctx context.Context) ([]models.EntityConfig, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get("/api/entities")
	if err != nil {
		return nil, fmt.Errorf("list entities request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var list models.EntityListResponse
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode entities response: %w", err)
	}

	h.logger.Debug().Int("entities", list.Length).Msg("entities received")
	return list.Entities, nil
}

// GetEntity implements [ServerAdapter]. It GETs /api/entities/{entity}.
func (h *httpServerAdapter) GetEntity(ctx context.Context, name string) (models.EntityConfig, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetPathParam("entity", name).
		Get("/api/entities/{entity}")
	if err != nil {
		return models.EntityConfig{}, fmt.Errorf("get entity request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EntityConfig{}, err
	}

	var entity models.EntityConfig
	if err = json.Unmarshal(resp.Body(), &entity); err != nil {
		return models.EntityConfig{}, fmt.Errorf("decode entity response: %w", err)
	}

	return entity, nil
}
