package config

import (
	"encoding/json"
	"os"

	"github.com/safetytracker/tracker/internal/flagx"
	"github.com/safetytracker/tracker/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Empty fields
// leave the corresponding Config value untouched.
type JsonConfig struct {
	BaseURL        string         `json:"base_url"`
	DBPath         string         `json:"db_path"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	LogLevel       string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c / -config. Without the flag nothing happens. Read or decode errors
// panic; the caller is main, where a broken config file is fatal anyway.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.DBPath != "" {
		cfg.DBPath = jc.DBPath
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
