package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvBaseURL  = "SAFETY_TRACKER_API_URL"
	EnvDBPath   = "SAFETY_TRACKER_DB"
	EnvLogLevel = "SAFETY_TRACKER_LOG_LEVEL"
)

// dotenvFile is the .env file consulted before reading the environment.
var dotenvFile = ".env"

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first; variables already set in the process
// environment win over the file. A .env file that exists but cannot be
// parsed panics, like a broken JSON config.
func parseEnv(cfg *Config) {
	if _, err := os.Stat(dotenvFile); err == nil {
		if err := godotenv.Load(dotenvFile); err != nil {
			panic(fmt.Errorf("load %s: %w", dotenvFile, err))
		}
	}

	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
