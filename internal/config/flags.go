package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d local database path (SQLite file holding the key-value store)
//	-c/-config json file path with configs
//	-persisted-ceiling persisted catalog size budget in bytes
//	-per-record-persist per-record persistence threshold in bytes
//	-max-value-bytes hard per-value limit of the key-value store
//	-max-record-bytes per-file quota in bytes
//	-max-total-bytes total storage quota in bytes
//	-warning-ratio usage ratio starting the warning band
//	-critical-ratio usage ratio starting the critical band
//	-token-sign-key session token signing key
//	-token-issuer session token issuer name
//	-monitor-interval usage monitor period (e.g., "1m", "30s")
func ParseFlags() *Config {
	var databaseDSN string
	var jsonConfigPath string
	var persistedCeiling int64
	var perRecordPersist int64
	var maxValueBytes int64
	var maxRecordBytes int64
	var maxTotalBytes int64
	var warningRatio float64
	var criticalRatio float64
	var tokenSignKey string
	var tokenIssuer string
	var monitorInterval time.Duration

	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.Int64Var(&persistedCeiling, "persisted-ceiling", 0, "Persisted catalog size budget in bytes")
	flag.Int64Var(&perRecordPersist, "per-record-persist", 0, "Per-record persistence threshold in bytes")
	flag.Int64Var(&maxValueBytes, "max-value-bytes", 0, "Hard per-value limit of the key-value store")
	flag.Int64Var(&maxRecordBytes, "max-record-bytes", 0, "Per-file quota in bytes")
	flag.Int64Var(&maxTotalBytes, "max-total-bytes", 0, "Total storage quota in bytes")
	flag.Float64Var(&warningRatio, "warning-ratio", 0, "Usage ratio starting the warning band")
	flag.Float64Var(&criticalRatio, "critical-ratio", 0, "Usage ratio starting the critical band")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Session token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Session token issuer")
	flag.DurationVar(&monitorInterval, "monitor-interval", 0, "Usage monitor period (e.g., 1m, 30s)")

	flag.Parse()

	return &Config{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			PersistedCeilingBytes: persistedCeiling,
			PerRecordPersistBytes: perRecordPersist,
			MaxValueBytes:         maxValueBytes,
		},
		Quota: Quota{
			MaxRecordBytes: maxRecordBytes,
			MaxTotalBytes:  maxTotalBytes,
			WarningRatio:   warningRatio,
			CriticalRatio:  criticalRatio,
		},
		Session: Session{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
		},
		Workers: Workers{
			MonitorInterval: monitorInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
