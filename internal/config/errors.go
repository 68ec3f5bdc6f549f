package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key or unknown environment).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported tokens backend).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidImageHostConfigs indicates an unsupported image host provider.
	ErrInvalidImageHostConfigs = errors.New("invalid image host configuration")
)
