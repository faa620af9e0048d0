// Package config loads runtime configuration for the Safety Tracker client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables, optionally from a .env file (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the REST backend
//	-d string   path of the local sqlite file holding the credential
//	-t int      request timeout (seconds)
//	-l string   log level
//
// Environment
//
//	SAFETY_TRACKER_API_URL, SAFETY_TRACKER_DB, SAFETY_TRACKER_LOG_LEVEL
//
// # JSON schema
//
//	{
//	  "base_url": "http://127.0.0.1:8000",
//	  "db_path": "safety_tracker.db",
//	  "request_timeout": "10s",
//	  "log_level": "info"
//	}
package config
