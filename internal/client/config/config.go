package config

import "time"

// Config holds runtime settings for the Safety Tracker client.
//
// Fields:
//   - BaseURL: scheme://host[:port] of the REST backend; the /api/... paths are appended.
//   - DBPath: sqlite file that keeps the persisted credential.
//   - RequestTimeout: upper bound for a single backend call.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	BaseURL        string
	DBPath         string
	RequestTimeout time.Duration
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8000"
	c.DBPath = "safety_tracker.db"
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment (including a .env file) and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
