package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidAppConfigs indicates missing application settings
	// (for example, an empty fields file path).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidUIConfigs indicates unusable presentation settings
	// (for example, a row narrower than the minimum width).
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
