package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// JSONConfig mirrors [Config] with JSON tags and string-friendly durations
// for the optional config file.
type JSONConfig struct {
	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		PersistedCeilingBytes int64 `json:"persisted_ceiling_bytes"`
		PerRecordPersistBytes int64 `json:"per_record_persist_bytes"`
		MaxValueBytes         int64 `json:"max_value_bytes"`
	} `json:"storage,omitempty"`

	Quota struct {
		MaxRecordBytes int64   `json:"max_record_bytes"`
		MaxTotalBytes  int64   `json:"max_total_bytes"`
		WarningRatio   float64 `json:"warning_ratio"`
		CriticalRatio  float64 `json:"critical_ratio"`
	} `json:"quota,omitempty"`

	Session struct {
		TokenSignKey string `json:"token_sign_key"`
		TokenIssuer  string `json:"token_issuer"`
	} `json:"session,omitempty"`

	Workers struct {
		MonitorInterval Duration `json:"monitor_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg JSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			PersistedCeilingBytes: jsonCfg.Storage.PersistedCeilingBytes,
			PerRecordPersistBytes: jsonCfg.Storage.PerRecordPersistBytes,
			MaxValueBytes:         jsonCfg.Storage.MaxValueBytes,
		},
		Quota: Quota{
			MaxRecordBytes: jsonCfg.Quota.MaxRecordBytes,
			MaxTotalBytes:  jsonCfg.Quota.MaxTotalBytes,
			WarningRatio:   jsonCfg.Quota.WarningRatio,
			CriticalRatio:  jsonCfg.Quota.CriticalRatio,
		},
		Session: Session{
			TokenSignKey: jsonCfg.Session.TokenSignKey,
			TokenIssuer:  jsonCfg.Session.TokenIssuer,
		},
		Workers: Workers{
			MonitorInterval: time.Duration(jsonCfg.Workers.MonitorInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
