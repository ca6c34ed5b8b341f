// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pdfplace Authors

package config

import (
	"time"
)

// Config is the top-level configuration container for the pdfplace client.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, an optional JSON file,
// and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type Config struct {
	// Storage holds the local persisted store settings, including the
	// degradation-ladder size budgets.
	Storage Storage `envPrefix:"STORAGE_"`

	// Quota holds the business-level storage quota limits and the
	// warning/critical usage thresholds.
	Quota Quota `envPrefix:"QUOTA_"`

	// Session holds the signing parameters for the persisted session token.
	Session Session `envPrefix:"SESSION_"`

	// Workers holds configuration for background workers (currently the
	// periodic usage monitor).
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage holds local persisted-store settings.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`

	// PersistedCeilingBytes is the practical size budget of the persisted
	// catalog entry (the encoded value written under the "catalog" key).
	// When the Tier 1 full-payload encoding exceeds this budget the
	// persistence ladder starts degrading. Distinct from, and much smaller
	// than, Quota.MaxTotalBytes.
	// Env: STORAGE_PERSISTED_CEILING_BYTES
	PersistedCeilingBytes int64 `env:"PERSISTED_CEILING_BYTES"`

	// PerRecordPersistBytes is the encoded payload size above which a
	// single record's payload is stripped from the persisted form (Tier 2)
	// and kept only in the in-process session mirror.
	// Env: STORAGE_PER_RECORD_PERSIST_BYTES
	PerRecordPersistBytes int64 `env:"PER_RECORD_PERSIST_BYTES"`

	// MaxValueBytes is the hard per-value limit enforced by the key-value
	// store itself. Writes above it fail with a quota error, which the
	// persistence ladder recovers from by falling to the metadata-only
	// tier.
	// Env: STORAGE_MAX_VALUE_BYTES
	MaxValueBytes int64 `env:"MAX_VALUE_BYTES"`
}

// DB holds connection settings for the local database backend.
type DB struct {
	// DSN is the SQLite file path (or ":memory:") holding the key-value
	// store.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Quota holds the business-level storage quota limits.
type Quota struct {
	// MaxRecordBytes is the encoded size ceiling for a single uploaded
	// document.
	// Env: QUOTA_MAX_RECORD_BYTES
	MaxRecordBytes int64 `env:"MAX_RECORD_BYTES"`

	// MaxTotalBytes is the encoded size ceiling for the whole catalog.
	// Env: QUOTA_MAX_TOTAL_BYTES
	MaxTotalBytes int64 `env:"MAX_TOTAL_BYTES"`

	// WarningRatio is the usage ratio at which the Warning band begins.
	// Env: QUOTA_WARNING_RATIO
	WarningRatio float64 `env:"WARNING_RATIO"`

	// CriticalRatio is the usage ratio at which the Critical band begins.
	// Env: QUOTA_CRITICAL_RATIO
	CriticalRatio float64 `env:"CRITICAL_RATIO"`
}

// Session holds signing parameters for the persisted session token.
type Session struct {
	// TokenSignKey is the HMAC key used to sign and verify the persisted
	// session token. A tampered token rehydrates to logged-out.
	// Env: SESSION_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in the session token.
	// Env: SESSION_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// MonitorInterval is how often the usage monitor recomputes aggregate
	// storage consumption and logs its band.
	// Env: WORKERS_MONITOR_INTERVAL
	MonitorInterval time.Duration `env:"MONITOR_INTERVAL"`
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (earlier sources win
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *Config or an error if any source fails to load
// or the final config fails validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
