package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	ErrEntityNotFound    = errors.New("entity not found")
	ErrConfigUnavailable = errors.New("admin configuration is unavailable")
	ErrInvalidConfig     = errors.New("resolved admin configuration is invalid")
)
