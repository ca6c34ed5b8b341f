package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration groups are incomplete or inconsistent.
var (
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, an empty DSN or a per-record threshold above the
	// catalog ceiling).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidQuotaConfigs indicates invalid quota settings (for example,
	// non-positive limits or thresholds outside (0, 1]).
	ErrInvalidQuotaConfigs = errors.New("invalid quota configuration")
	// ErrInvalidSessionConfigs indicates invalid session token settings
	// (for example, a missing signing key).
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a zero monitor interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
