// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pdfplace Authors

package config

// validate checks that the final merged [Config] satisfies all application
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the sentinel errors
// from errors.go otherwise.
func (cfg *Config) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.PersistedCeilingBytes <= 0 ||
		cfg.Storage.PerRecordPersistBytes <= 0 ||
		cfg.Storage.PerRecordPersistBytes > cfg.Storage.PersistedCeilingBytes ||
		cfg.Storage.MaxValueBytes < cfg.Storage.PersistedCeilingBytes {
		return ErrInvalidStorageConfigs
	}

	if cfg.Quota.MaxRecordBytes <= 0 || cfg.Quota.MaxTotalBytes <= 0 ||
		cfg.Quota.MaxRecordBytes > cfg.Quota.MaxTotalBytes {
		return ErrInvalidQuotaConfigs
	}
	if cfg.Quota.WarningRatio <= 0 || cfg.Quota.WarningRatio > 1 ||
		cfg.Quota.CriticalRatio <= 0 || cfg.Quota.CriticalRatio > 1 ||
		cfg.Quota.WarningRatio >= cfg.Quota.CriticalRatio {
		return ErrInvalidQuotaConfigs
	}

	if cfg.Session.TokenSignKey == "" || cfg.Session.TokenIssuer == "" {
		return ErrInvalidSessionConfigs
	}

	if cfg.Workers.MonitorInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
