package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseEnv_AllFields verifies that every env-mapped field is populated.
func TestParseEnv_AllFields(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "env.db")
	t.Setenv("STORAGE_PERSISTED_CEILING_BYTES", "1048576")
	t.Setenv("STORAGE_PER_RECORD_PERSIST_BYTES", "524288")
	t.Setenv("STORAGE_MAX_VALUE_BYTES", "2097152")
	t.Setenv("QUOTA_MAX_RECORD_BYTES", "1000")
	t.Setenv("QUOTA_MAX_TOTAL_BYTES", "10000")
	t.Setenv("QUOTA_WARNING_RATIO", "0.7")
	t.Setenv("QUOTA_CRITICAL_RATIO", "0.85")
	t.Setenv("SESSION_TOKEN_SIGN_KEY", "env-key")
	t.Setenv("SESSION_TOKEN_ISSUER", "env-issuer")
	t.Setenv("WORKERS_MONITOR_INTERVAL", "90s")
	t.Setenv("CONFIG", "/tmp/cfg.json")

	var cfg Config
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, int64(1048576), cfg.Storage.PersistedCeilingBytes)
	assert.Equal(t, int64(524288), cfg.Storage.PerRecordPersistBytes)
	assert.Equal(t, int64(2097152), cfg.Storage.MaxValueBytes)
	assert.Equal(t, int64(1000), cfg.Quota.MaxRecordBytes)
	assert.Equal(t, int64(10000), cfg.Quota.MaxTotalBytes)
	assert.InDelta(t, 0.7, cfg.Quota.WarningRatio, 1e-9)
	assert.InDelta(t, 0.85, cfg.Quota.CriticalRatio, 1e-9)
	assert.Equal(t, "env-key", cfg.Session.TokenSignKey)
	assert.Equal(t, "env-issuer", cfg.Session.TokenIssuer)
	assert.Equal(t, 90*time.Second, cfg.Workers.MonitorInterval)
	assert.Equal(t, "/tmp/cfg.json", cfg.JSONFilePath)
}

// TestParseEnv_EmptyEnv verifies that parsing with no variables set leaves a
// zero-value config.
func TestParseEnv_EmptyEnv(t *testing.T) {
	var cfg Config
	require.NoError(t, parseEnv(&cfg))
	assert.Equal(t, Config{}, cfg)
}

// TestParseEnv_InvalidInteger verifies that an unparsable numeric value is
// reported as an error.
func TestParseEnv_InvalidInteger(t *testing.T) {
	t.Setenv("QUOTA_MAX_RECORD_BYTES", "fifty-megabytes")

	var cfg Config
	err := parseEnv(&cfg)
	require.Error(t, err)
}

// TestParseEnv_InvalidDuration verifies that an unparsable duration is
// reported as an error.
func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("WORKERS_MONITOR_INTERVAL", "soon")

	var cfg Config
	err := parseEnv(&cfg)
	require.Error(t, err)
}
