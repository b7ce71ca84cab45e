package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first when present; real
// environment variables win over it (godotenv does not override).
//
// Recognized variables:
//
//	DEVHUB_API_URL          base URL of the backend API
//	DEVHUB_REQUEST_TIMEOUT  duration, e.g. "30s"
//	DEVHUB_DB_FILE          path of the local sqlite database
//	DEVHUB_HEALTH_INTERVAL  duration between health probes
//	DEVHUB_LOG_LEVEL        debug | info | warn | error
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("DEVHUB_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("DEVHUB_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("DEVHUB_DB_FILE"); v != "" {
		cfg.DatabaseFile = v
	}
	if v := os.Getenv("DEVHUB_HEALTH_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.HealthCheckInterval = d
		}
	}
	if v := os.Getenv("DEVHUB_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
