// Package http implements the HTTP transport layer of the admin configuration
// server.
//
// It exposes the resolved admin backend configuration read-only: the
// /api/entities endpoints list and describe entities, and every resolved
// entity gets its own /admin/<name> route. Request tracing, access logging
// and response compression are handled here before requests reach the
// service layer.
package http
