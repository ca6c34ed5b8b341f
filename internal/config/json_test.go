package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseJSON_Success verifies that a well-formed file maps onto Config.
func TestParseJSON_Success(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{
			"db":                       map[string]any{"dsn": "file.db"},
			"persisted_ceiling_bytes":  4194304,
			"per_record_persist_bytes": 2097152,
			"max_value_bytes":          5242880,
		},
		"quota": map[string]any{
			"max_record_bytes": 52428800,
			"max_total_bytes":  838860800,
			"warning_ratio":    0.8,
			"critical_ratio":   0.9,
		},
		"session": map[string]any{
			"token_sign_key": "json-key",
			"token_issuer":   "json-issuer",
		},
		"workers": map[string]any{"monitor_interval": "2m"},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "file.db", cfg.Storage.DB.DSN)
	assert.Equal(t, int64(4194304), cfg.Storage.PersistedCeilingBytes)
	assert.Equal(t, int64(2097152), cfg.Storage.PerRecordPersistBytes)
	assert.Equal(t, int64(5242880), cfg.Storage.MaxValueBytes)
	assert.Equal(t, int64(52428800), cfg.Quota.MaxRecordBytes)
	assert.Equal(t, int64(838860800), cfg.Quota.MaxTotalBytes)
	assert.Equal(t, "json-key", cfg.Session.TokenSignKey)
	assert.Equal(t, 2*time.Minute, cfg.Workers.MonitorInterval)
	assert.Empty(t, cfg.JSONFilePath, "the file never points at itself")
}

// TestParseJSON_FileNotFound verifies the error path for a missing file.
func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Nil(t, cfg)
	require.Error(t, err)
}

// TestParseJSON_InvalidJSON verifies the error path for a malformed file.
func TestParseJSON_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	cfg, err := parseJSON(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
}

// TestDuration_UnmarshalJSON verifies both numeric and string duration forms.
func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{name: "string form", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "numeric nanoseconds", input: `60000000000`, want: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, d.UnmarshalJSON([]byte(tt.input)))
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

// TestDuration_UnmarshalJSON_Invalid verifies that garbage is rejected.
func TestDuration_UnmarshalJSON_Invalid(t *testing.T) {
	var d Duration
	require.Error(t, d.UnmarshalJSON([]byte(`"soon"`)))
}
