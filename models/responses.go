package models

// EntityListResponse is the body of GET /api/entities.
type EntityListResponse struct {
	// Entities lists every resolved entity in order of first appearance.
	Entities []EntityConfig `json:"entities"`

	// Length is the number of entries in Entities.
	Length int `json:"length"`
}

// AdminRoute is the body of GET /admin/<name>: the route set registered for
// one resolved entity.
type AdminRoute struct {
	// Path is the admin route of the entity.
	Path string `json:"path"`

	// API is the read-only API route describing the entity.
	API string `json:"api"`

	Entity EntityConfig `json:"entity"`
}
