package config

import "time"

// Built-in defaults. The quota set is the documented one: 50 MiB per file,
// 800 MiB total, warning at 80%, critical at 90%. The persisted-store
// budgets keep the catalog value small and cheap to rewrite: a 4 MiB
// catalog value, payloads above 2 MiB stripped to session-only.
func defaultConfig() *Config {
	return &Config{
		Storage: Storage{
			DB: DB{
				DSN: "pdfplace.db",
			},
			PersistedCeilingBytes: 4 * 1024 * 1024,
			PerRecordPersistBytes: 2 * 1024 * 1024,
			MaxValueBytes:         5 * 1024 * 1024,
		},
		Quota: Quota{
			MaxRecordBytes: 50 * 1024 * 1024,
			MaxTotalBytes:  800 * 1024 * 1024,
			WarningRatio:   0.8,
			CriticalRatio:  0.9,
		},
		Session: Session{
			// Demo application: the token guards against accidental edits of
			// the persisted session entry, not against a determined user.
			TokenSignKey: "pdfplace-demo-session-key",
			TokenIssuer:  "pdfplace",
		},
		Workers: Workers{
			MonitorInterval: time.Minute,
		},
	}
}
