package config

import "errors"

var (
	// ErrInvalidStorageConfigs is returned when the database DSN is
	// missing or the driver name is not recognised.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs: DSN and a known driver are required")

	// ErrInvalidAuthConfigs is returned when neither a JWT secret nor a
	// provider URL is configured, leaving no way to verify bearer tokens.
	ErrInvalidAuthConfigs = errors.New("invalid auth configs: either a JWT secret or a provider URL is required")
)
